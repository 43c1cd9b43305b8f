package util

import (
	"strconv"
	"strings"
	"time"
)

// ParseDuration parses duration strings supporting the "d" (day) suffix in
// addition to the units time.ParseDuration understands, e.g. "30d", "24h",
// "10m".
// ParseDuration 解析时长字符串，除 time.ParseDuration 支持的单位外，
// 额外支持 "d"（天）后缀，如 "30d"、"24h"、"10m"。
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "d") {
		days, err := strconv.ParseFloat(strings.TrimSuffix(s, "d"), 64)
		if err != nil {
			return 0, err
		}
		return time.Duration(days * 24 * float64(time.Hour)), nil
	}
	return time.ParseDuration(s)
}
