package main

import (
	"errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"os"
	"os/exec"
	"sliceQuota/squota/command"
)

const usage = `squota caps the CPU usage of Linux users through their systemd slices.
               Give it a quota and some usernames to limit each user, an empty quota to lift the limit,
               or --show to report what is currently in effect.`

func main() {
	app := cli.NewApp()
	app.Name = "squota"
	app.Usage = usage
	app.ArgsUsage = "CPU_QUOTA USER... (with --show: USER...)"
	app.Flags = command.Flags
	app.Action = command.Action

	app.Before = func(context *cli.Context) error {
		log.SetFormatter(&log.TextFormatter{})
		log.SetOutput(os.Stderr)
		if context.Bool("verbose") {
			log.SetLevel(log.InfoLevel)
		} else {
			log.SetLevel(log.WarnLevel)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		// systemctl失败时把它自己的退出码透传出去
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			log.Error(err)
			os.Exit(exitErr.ExitCode())
		}
		log.Fatal(err)
	}
}
