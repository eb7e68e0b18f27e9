package slice

import (
	"errors"
	"fmt"
	osuser "os/user"
	"strconv"
)

// UserSlice 一个用户对应的systemd资源切片
type UserSlice struct {
	User string
	Uid  int
	Name string
}

// 每个用户的slice名由uid套进固定模板得到
var SliceNameTemplate = "user-%d.slice"

// ResolveUser 从系统账号数据库查出用户，并推导出对应的slice名，如：user-1000.slice
func ResolveUser(name string) (*UserSlice, error) {
	u, err := osuser.Lookup(name)
	if err != nil {
		return nil, err
	}
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return nil, fmt.Errorf("parse uid %s of user %s err: %v", u.Uid, name, err)
	}
	return &UserSlice{
		User: name,
		Uid:  uid,
		Name: fmt.Sprintf(SliceNameTemplate, uid),
	}, nil
}

// IsUnknownUser 用户不存在属于可跳过的情况，调用方据此决定告警后继续
func IsUnknownUser(err error) bool {
	var unknown osuser.UnknownUserError
	return errors.As(err, &unknown)
}
