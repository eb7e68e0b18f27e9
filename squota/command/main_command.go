package command

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"os"
	"sliceQuota/squota/config"
	"sliceQuota/squota/run"
	"sliceQuota/squota/systemd"
)

var Flags = []cli.Flag{
	cli.BoolFlag{
		Name:  "dry-run, d",
		Usage: "print the systemctl commands without executing them",
	},
	cli.BoolFlag{
		Name:  "verbose, v",
		Usage: "print per-user progress",
	},
	cli.BoolFlag{
		Name:  "show, s",
		Usage: "show the current CPU quota of each user instead of setting it",
	},
	cli.BoolFlag{
		Name:  "effective",
		Usage: "with --show, also read the quota the kernel enforces from the cgroup filesystem",
	},
	cli.BoolFlag{
		Name:  "runtime",
		Usage: "apply the quota for this boot only (systemctl --runtime)",
	},
	cli.StringFlag{
		Name:   "config, c",
		Value:  config.DefaultPath,
		Usage:  "load settings from `FILE`",
		EnvVar: "SQUOTA_CONFIG",
	},
}

// Action 主入口
/*
1.区分设置/清除与查询两种模式，标志后的第一个位置参数是配额值（查询模式下全部是用户名）
2.位置参数不够时打印帮助：完全裸调用正常退出，带了标志说明用法不完整，按错误处理
3.定位systemctl，找不到立即中止，然后把用户列表交给run包逐个处理
*/
func Action(c *cli.Context) error {
	if c.NArg() == 0 {
		_ = cli.ShowAppHelp(c)
		if c.Bool("show") {
			return fmt.Errorf("show mode requires at least one username")
		}
		if c.NumFlags() == 0 {
			return nil
		}
		return fmt.Errorf("missing CPU quota and usernames")
	}

	show := c.Bool("show")
	var rawQuota string
	var users []string
	if show {
		users = []string(c.Args())
	} else {
		rawQuota = c.Args().First()
		users = c.Args().Tail()
		if len(users) == 0 {
			_ = cli.ShowAppHelp(c)
			return fmt.Errorf("no usernames given")
		}
	}

	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.Verbose && !c.Bool("verbose") {
		log.SetLevel(log.InfoLevel)
	}

	mgr, err := systemd.NewSystemctl(cfg.Systemctl, c.Bool("runtime") || cfg.Runtime)
	if err != nil {
		return err
	}

	if show {
		return run.ShowQuota(os.Stdout, mgr, users, c.Bool("effective"))
	}
	return run.SetQuota(os.Stdout, mgr, rawQuota, users, c.Bool("dry-run"))
}
