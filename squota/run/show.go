package run

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"io"
	"io/fs"
	"os"
	"sliceQuota/squota/cgroupfs"
	"sliceQuota/squota/quota"
	"sliceQuota/squota/slice"
	"sliceQuota/squota/systemd"
	"text/tabwriter"
)

// 测试里替换成fstest.MapFS，避免读真实的cgroup文件系统
var sysFS fs.FS = os.DirFS("/")

// ShowQuota 查询并打印每个用户当前的CPU配额，不改动任何状态
/*
1.逐个解析用户名，查不到的用户在表格里标注出来，不中断
2.向systemd查询CPUQuotaPerSecUSec并换算成百分比
3.带effective时再从cgroup文件系统读内核实际生效的值，读不到就展示成-
*/
func ShowQuota(out io.Writer, mgr systemd.Manager, users []string, effective bool) error {
	w := tabwriter.NewWriter(out, 12, 1, 3, ' ', 0)
	header := "USER\tUID\tSLICE\tCPUQUOTA"
	if effective {
		header += "\tEFFECTIVE"
	}
	_, _ = fmt.Fprint(w, header+"\n")

	for _, name := range users {
		u, err := slice.ResolveUser(name)
		if err != nil {
			if slice.IsUnknownUser(err) {
				log.Warnf("user %s not found, skip", name)
				row := fmt.Sprintf("%s\t-\t-\tunknown user", name)
				if effective {
					row += "\t-"
				}
				_, _ = fmt.Fprint(w, row+"\n")
				continue
			}
			return fmt.Errorf("resolve user %s err: %v", name, err)
		}

		val, err := mgr.ShowProperty(u.Name, systemd.CPUQuotaPerSecProperty)
		if err != nil {
			return err
		}
		display, err := quota.DisplayPercent(val)
		if err != nil {
			// 换算不了的取值原样展示，查询模式不为此中断
			log.Debugf("display quota of %s err: %v", u.Name, err)
			display = val
		}

		row := fmt.Sprintf("%s\t%d\t%s\t%s", u.User, u.Uid, u.Name, display)
		if effective {
			eff, err := cgroupfs.EffectivePercent(sysFS, u.Uid)
			if err != nil {
				log.Debugf("effective quota of %s err: %v", u.Name, err)
				eff = "-"
			}
			row += "\t" + eff
		}
		_, _ = fmt.Fprint(w, row+"\n")
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush show writer err: %v", err)
	}
	return nil
}
