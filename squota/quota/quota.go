package quota

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Infinity systemd用这个字面值表示没有配额限制
const Infinity = "infinity"

// 每秒配额里的10000us对应1%，CPUQuotaPerSecUSec就是按这个口径换算成百分比
const usPerPercent = 10000

var perSecPattern = regexp.MustCompile(`^([0-9]+)(us|ms|s|m)?$`)

// 各时间单位到微秒的倍率，注意m按毫秒的倍率处理而不是分钟
var unitScale = map[string]int64{
	"":   1,
	"us": 1,
	"ms": 1000,
	"s":  1000000,
	"m":  1000,
}

// Normalize 把配额值统一成带%后缀的形式，空串表示清除限制，原样放行
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.HasSuffix(raw, "%") {
		return raw
	}
	return raw + "%"
}

// DisplayPercent 把CPUQuotaPerSecUSec的取值换算成展示用的百分比，如500ms -> 50.0%
func DisplayPercent(val string) (string, error) {
	if val == Infinity {
		return "no limit", nil
	}
	match := perSecPattern.FindStringSubmatch(val)
	if match == nil {
		return "", fmt.Errorf("unexpected per-second quota value: %s", val)
	}
	n, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse quota number %s err: %v", match[1], err)
	}
	us := n * unitScale[match[2]]
	return fmt.Sprintf("%.1f%%", float64(us)/usPerPercent), nil
}
