package run

import (
	"bytes"
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"os"
	"strings"
	"testing"
)

// fakeManager 记录所有写操作，查询返回预置的属性值，不触碰真实的systemd
type fakeManager struct {
	setCalls []string
	setErr   error
	values   map[string]string
	showErr  error
}

func (f *fakeManager) SetProperty(unit, property, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.setCalls = append(f.setCalls, fmt.Sprintf("%s %s=%s", unit, property, value))
	return nil
}

func (f *fakeManager) ShowProperty(unit, property string) (string, error) {
	if f.showErr != nil {
		return "", f.showErr
	}
	return f.values[unit], nil
}

func (f *fakeManager) SetPropertyCommand(unit, property, value string) string {
	return fmt.Sprintf("systemctl set-property %s %s=%s", unit, property, value)
}

func captureWarnings(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestSetQuotaAppliesToEachUser(t *testing.T) {
	mgr := &fakeManager{}
	var out bytes.Buffer

	err := SetQuota(&out, mgr, "50", []string{"root", "root"}, false)
	assert.Equal(t, nil, err)
	// 重复列出的用户各处理一次，配额值补上%后缀
	assert.Equal(t, []string{
		"user-0.slice CPUQuota=50%",
		"user-0.slice CPUQuota=50%",
	}, mgr.setCalls)
	assert.Equal(t, "", out.String())
}

func TestSetQuotaRemoval(t *testing.T) {
	mgr := &fakeManager{}
	var out bytes.Buffer

	err := SetQuota(&out, mgr, "", []string{"root"}, false)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"user-0.slice CPUQuota="}, mgr.setCalls)
}

func TestSetQuotaDryRun(t *testing.T) {
	mgr := &fakeManager{}
	var out bytes.Buffer

	err := SetQuota(&out, mgr, "50%", []string{"root", "root"}, true)
	assert.Equal(t, nil, err)
	// dry-run绝不能真的执行命令，只按用户各打印一行
	assert.Equal(t, 0, len(mgr.setCalls))
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, 2, len(lines))
	assert.Equal(t, "systemctl set-property user-0.slice CPUQuota=50%", lines[0])
	assert.Equal(t, lines[0], lines[1])
}

func TestSetQuotaSkipsUnknownUser(t *testing.T) {
	logBuf := captureWarnings(t)
	mgr := &fakeManager{}
	var out bytes.Buffer

	err := SetQuota(&out, mgr, "50%", []string{"squota-no-such-user", "root"}, false)
	assert.Equal(t, nil, err)
	// 未知用户恰好告警一次，后面的用户照常处理
	assert.Equal(t, 1, strings.Count(logBuf.String(), "squota-no-such-user not found"))
	assert.Equal(t, []string{"user-0.slice CPUQuota=50%"}, mgr.setCalls)
}

func TestSetQuotaPropagatesFailure(t *testing.T) {
	mgr := &fakeManager{setErr: errors.New("boom")}
	var out bytes.Buffer

	err := SetQuota(&out, mgr, "50%", []string{"root"}, false)
	assert.Error(t, err)
}
