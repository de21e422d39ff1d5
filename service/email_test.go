package service

import (
	"testing"
	"time"

	"housebook/config"
	"housebook/models"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func testTask() models.Task {
	return models.Task{
		ItemName:  "净水器滤芯更换",
		ModelName: "SU-3000",
		DueDate:   time.Date(2025, 9, 30, 0, 0, 0, 0, time.Local),
		Email:     "family@example.com",
	}
}

func TestGenerateRegisteredEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateRegisteredEmailBody(testTask())
	assert.Contains(t, body, "净水器滤芯更换")
	assert.Contains(t, body, "SU-3000")
	assert.Contains(t, body, "2025-09-30")
	assert.Contains(t, body, "登记成功")
}

func TestGenerateDueEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateDueEmailBody(testTask())
	assert.Contains(t, body, "净水器滤芯更换")
	assert.Contains(t, body, "SU-3000")
	assert.Contains(t, body, "2025-09-30")
	assert.Contains(t, body, "即将到期")
}

func TestGenerateEmailBody_EmptyModelName(t *testing.T) {
	s := newTestEmailService()
	task := testTask()
	task.ModelName = ""

	// 型号为空时显示「无」
	assert.Contains(t, s.generateRegisteredEmailBody(task), "无")
	assert.Contains(t, s.generateDueEmailBody(task), "无")
}

func TestDeliver_DisabledSkipsSend(t *testing.T) {
	s := newTestEmailService()
	// 邮件服务未启用时直接跳过，不报错不发送
	s.SendRegisteredNotice(testTask())
	s.SendDueReminder(testTask())
}
