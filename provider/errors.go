package provider

import "errors"

// Account resolution failures. Both are terminal for a query and are shown
// to the user as-is, never retried.
var (
	ErrUserNotFound      = errors.New("未找到此玩家，请确保此玩家的用户名和查分器中的用户名相同")
	ErrUserDisabledQuery = errors.New("该用户禁止了其他人获取数据")
)
