package utl

import (
	"crypto/md5"
	"encoding/hex"
	"path/filepath"
	"runtime"
	"strings"
)

// MD5 返回字符串的十六进制MD5摘要，用作缓存键和版本号
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Root 返回项目根目录，即本文件所在目录的上一级
func Root() string {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(filepath.Dir(filename))
}

// JoinString 连接多个字符串
func JoinString(elem ...string) string {
	return strings.Join(elem, "")
}
