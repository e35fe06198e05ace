package platevalues

// Traditional form variants of the version characters users may type.
var plateCN = map[string]string{
	"暁": "晓",
	"櫻": "樱",
	"菫": "堇",
	"輝": "辉",
	"華": "华",
	"極": "极",
}

// Game versions covered by each plate version character.
var plateVersion = map[string][]string{
	"真": {"maimai", "maimai PLUS"},
	"超": {"maimai GreeN"},
	"檄": {"maimai GreeN PLUS"},
	"橙": {"maimai ORANGE"},
	"晓": {"maimai ORANGE PLUS"},
	"桃": {"maimai PiNK"},
	"樱": {"maimai PiNK PLUS"},
	"紫": {"maimai MURASAKi"},
	"堇": {"maimai MURASAKi PLUS"},
	"白": {"maimai MiLK"},
	"雪": {"MiLK PLUS"},
	"辉": {"maimai FiNALE"},
	"熊": {"maimai でらっくす"},
	"华": {"maimai でらっくす PLUS"},
	"爽": {"maimai でらっくす Splash"},
	"煌": {"maimai でらっくす Splash PLUS"},
	"星": {"maimai でらっくす UNiVERSE"},
	"宙": {"maimai でらっくす UNiVERSE PLUS"},
	"祭": {"maimai でらっくす FESTiVAL"},
	"祝": {"maimai でらっくす FESTiVAL PLUS"},
	"双": {"maimai でらっくす BUDDiES"},
	"宴": {"maimai でらっくす BUDDiES PLUS"},
	"镜": {"maimai でらっくす PRiSM"},
}

// Normalize resolves a traditional variant to its canonical version character.
func Normalize(version string) string {
	if canonical, exists := plateCN[version]; exists {
		return canonical
	}
	return version
}

// Versions returns the game version names covered by a plate version character.
func Versions(version string) ([]string, bool) {
	versions, exists := plateVersion[Normalize(version)]
	return versions, exists
}

// Unsupported verifies if the version family can't be queried at all.
// The 舞 era and the 霸者 plate span removed charts and aren't computable.
func Unsupported(version string) bool {
	normalized := Normalize(version)
	return normalized == "舞" || normalized == "霸"
}

// Invalid verifies if the (version, plan) pair names a plate that was never
// issued. The first era shipped without a 将 plate.
func Invalid(version string, plan string) bool {
	return Normalize(version)+normalizePlan(plan) == "真将"
}

func normalizePlan(plan string) string {
	if plan == "極" {
		return "极"
	}
	return plan
}

// Plan completion requirements, expressed as the minimum provider flag or
// achievement needed for a chart to count as done.
type Requirement struct {
	MinAchievement float64
	MinComboFlag   string
	MinSyncFlag    string
}

// Plan requirement per plan character. 舞舞 is written as a two-rune plan.
var planRequirement = map[string]Requirement{
	"极":  {MinComboFlag: "fc"},
	"将":  {MinAchievement: 100.0},
	"神":  {MinComboFlag: "ap"},
	"舞舞": {MinSyncFlag: "fsd"},
	"者":  {MinAchievement: 80.0},
}

// PlanRequirement returns the completion requirement for a plan token.
func PlanRequirement(plan string) (Requirement, bool) {
	req, exists := planRequirement[normalizePlan(plan)]
	return req, exists
}
