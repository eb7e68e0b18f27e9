package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"os/exec"
	"strings"
)

// 手工演示squota封装起来的几步操作：id查uid，systemctl读属性，cgroup文件系统看内核生效值
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: quota <username>")
		os.Exit(1)
	}
	name := os.Args[1]

	out, err := exec.Command("id", "-u", name).Output()
	if err != nil {
		log.Fatal(err)
	}
	uid := strings.TrimSpace(string(out))
	unit := fmt.Sprintf("user-%s.slice", uid)
	fmt.Printf("slice: %s\n", unit)

	// 设置限额就是对这个unit执行，如：systemctl set-property user-1000.slice CPUQuota=50%
	val, err := exec.Command("systemctl", "show", "--property=CPUQuotaPerSecUSec", "--value", unit).Output()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("CPUQuotaPerSecUSec: %s", val)

	// cgroup v2下内核实际执行的配额
	maxFile := fmt.Sprintf("/sys/fs/cgroup/user.slice/%s/cpu.max", unit)
	if b, err := ioutil.ReadFile(maxFile); err == nil {
		fmt.Printf("cpu.max: %s", b)
	}
}
