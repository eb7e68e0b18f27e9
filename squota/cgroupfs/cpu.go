package cgroupfs

import (
	"bufio"
	"bytes"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
)

// EffectivePercent 从cgroup文件系统读出某个用户slice实际生效的CPU配额百分比
/*
优先读cgroup v2统一层级下的cpu.max，老内核上退回v1的cfs_quota_us和cfs_period_us，
v1的cpu控制器挂载点从mountinfo里找，不写死目录名（不同发行版可能是cpu或cpu,cpuacct）
*/
func EffectivePercent(sys fs.FS, uid int) (string, error) {
	v2Path := fmt.Sprintf("sys/fs/cgroup/user.slice/user-%d.slice/cpu.max", uid)
	if b, err := fs.ReadFile(sys, v2Path); err == nil {
		return percentFromMax(b)
	}

	mount, err := findCPUMountPoint(sys)
	if err != nil {
		return "", err
	}
	base := fmt.Sprintf("%s/user.slice/user-%d.slice", mount, uid)
	quotaUs, err := readInt(sys, base+"/cpu.cfs_quota_us")
	if err != nil {
		return "", err
	}
	// v1用-1表示不限额
	if quotaUs < 0 {
		return "no limit", nil
	}
	periodUs, err := readInt(sys, base+"/cpu.cfs_period_us")
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.1f%%", float64(quotaUs)/float64(periodUs)*100), nil
}

// percentFromMax 解析v2的cpu.max，内容为"<quota> <period>"，quota取max时表示不限额
func percentFromMax(b []byte) (string, error) {
	fields := bytes.Fields(b)
	if len(fields) != 2 {
		return "", fmt.Errorf("unexpected cpu.max content: %s", strings.TrimSpace(string(b)))
	}
	if string(fields[0]) == "max" {
		return "no limit", nil
	}
	quotaUs, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse cpu.max quota err: %v", err)
	}
	periodUs, err := strconv.ParseInt(string(fields[1]), 10, 64)
	if err != nil {
		return "", fmt.Errorf("parse cpu.max period err: %v", err)
	}
	return fmt.Sprintf("%.1f%%", float64(quotaUs)/float64(periodUs)*100), nil
}

func readInt(sys fs.FS, path string) (int64, error) {
	b, err := fs.ReadFile(sys, path)
	if err != nil {
		return 0, fmt.Errorf("read file %s err: %v", path, err)
	}
	n, err := strconv.ParseInt(string(bytes.TrimSpace(b)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s err: %v", path, err)
	}
	return n, nil
}

// findCPUMountPoint 在mountinfo里定位挂了cpu子系统的cgroup v1挂载点
func findCPUMountPoint(sys fs.FS) (string, error) {
	f, err := sys.Open("proc/self/mountinfo")
	if err != nil {
		return "", fmt.Errorf("open proc/self/mountinfo err: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), " ")
		for _, opt := range strings.Split(fields[len(fields)-1], ",") {
			if opt == "cpu" {
				// fs.FS里的路径不带前导斜杠
				return strings.TrimPrefix(fields[4], "/"), nil
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("file scanner err: %v", err)
	}
	return "", fmt.Errorf("cpu cgroup mount point not found")
}
