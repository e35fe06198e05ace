package messages

// Internal error formats.
const (
	BadStatusCodeMsg    = "API returned status code %d on URL %s"
	FailedToParseMsg    = "failed to parse API response"
	OperationInProgress = "operation already in progress, please wait"
	RequestFailedMsg    = "API request failed on URL %s"
)

// User-facing replies. The dispatch layer forwards these verbatim.
const (
	RandomEmpty        = "没有这样的乐曲哦。"
	RandomSyntaxError  = "随机命令错误，请检查语法"
	TableLevelOnly     = "只支持查询lv7-15的定数表"
	TablePlanOnly      = "只支持查询lv7-15的完成表"
	UnknownTableLevel  = "无法识别的定数"
	UnknownLevel       = "无此等级"
	UnknownRank        = "无此评价等级"
	NoAmbition         = "兄啊，有点志向好不好"
	PlateUnsupported   = "暂不支持查询「舞」系和「霸者」的牌子"
	PlateNotExist      = "真系没有真将哦"
	UnknownPlate       = "无法识别的牌子"
	CategoryRejectFmt  = "无法指定查询「%s」"
	NotRanked          = "您未上榜，无法查询排名"
	MyRankFmt          = "您的Rating为「%d」，排名第「%d」名"
	ProviderDown       = "服务暂时不可用，请稍后再试"
)
