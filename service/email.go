package service

import (
	"fmt"
	"log"

	"housebook/config"
	"housebook/models"

	"gopkg.in/gomail.v2"
)

// Mailer 提醒邮件发送接口，便于在调度器和处理器测试中注入假实现
type Mailer interface {
	// SendRegisteredNotice 任务登记成功后立即发送的确认邮件
	SendRegisteredNotice(task models.Task)
	// SendDueReminder 到期提醒邮件（到期当天与前一天各发一次）
	SendDueReminder(task models.Task)
}

// EmailService 邮件服务
// 发送是尽力而为的：任何失败只记录日志，不向调用方返回错误，也不重试
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendRegisteredNotice 发送任务登记确认邮件
func (s *EmailService) SendRegisteredNotice(task models.Task) {
	subject := fmt.Sprintf("【居家账本】新提醒登记完成: %s", task.ItemName)
	body := s.generateRegisteredEmailBody(task)
	s.deliver(task.Email, subject, body)
}

// SendDueReminder 发送到期提醒邮件
func (s *EmailService) SendDueReminder(task models.Task) {
	subject := fmt.Sprintf("【居家账本】到期提醒: %s", task.ItemName)
	body := s.generateDueEmailBody(task)
	s.deliver(task.Email, subject, body)
}

// deliver 发送并吞掉错误，只留日志
func (s *EmailService) deliver(to, subject, body string) {
	if !s.cfg.Enabled {
		log.Printf("邮件服务未启用，跳过发送: %s -> %s", subject, to)
		return
	}
	if err := s.sendEmail(to, subject, body); err != nil {
		log.Printf("邮件发送失败: %s -> %s: %v", subject, to, err)
		return
	}
	log.Printf("邮件发送成功: %s -> %s", subject, to)
}

// sendEmail 发送邮件
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("发送邮件失败: %w", err)
	}

	return nil
}

// generateRegisteredEmailBody 生成登记确认邮件内容
func (s *EmailService) generateRegisteredEmailBody(task models.Task) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, 'Microsoft YaHei', sans-serif; background-color: #f4f7f9; padding: 20px; text-align: center;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 30px; border-radius: 12px; box-shadow: 0 4px 15px rgba(0,0,0,0.1);">
        <h1 style="color: #1e3a8a; margin-top: 0; font-size: 28px;">🏠 居家维护提醒</h1>
        <p style="font-size: 16px; color: #555;">您好，「%s」的维护提醒已登记成功。</p>
        <hr style="border: 0; height: 1px; background-color: #eee; margin: 20px 0;">
        <table style="width: 100%%; text-align: left; border-collapse: collapse;">
            <tr>
                <td style="padding: 10px; font-weight: bold; color: #1e3a8a;">提醒项目</td>
                <td style="padding: 10px; color: #333;">%s</td>
            </tr>
            <tr>
                <td style="padding: 10px; font-weight: bold; color: #1e3a8a;">设备型号</td>
                <td style="padding: 10px; color: #333;">%s</td>
            </tr>
            <tr>
                <td style="padding: 10px; font-weight: bold; color: #1e3a8a;">到期日</td>
                <td style="padding: 10px; color: #ef4444; font-weight: bold;">%s</td>
            </tr>
        </table>
        <p style="font-size: 14px; color: #888; margin-top: 30px;">本邮件由系统自动发送，请勿回复。</p>
    </div>
</div>
`, task.ItemName, task.ItemName, modelNameOrDefault(task), task.DueDate.Format("2006-01-02"))
}

// generateDueEmailBody 生成到期提醒邮件内容
func (s *EmailService) generateDueEmailBody(task models.Task) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, 'Microsoft YaHei', sans-serif; background-color: #f4f7f9; padding: 20px; text-align: center;">
    <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; padding: 30px; border-radius: 12px; box-shadow: 0 4px 15px rgba(0,0,0,0.2);">
        <h1 style="color: #ef4444; margin-top: 0; font-size: 28px;">🚨 维护日期临近！</h1>
        <p style="font-size: 16px; color: #555;">「%s」即将到期，请及时处理。</p>
        <hr style="border: 0; height: 1px; background-color: #eee; margin: 20px 0;">
        <table style="width: 100%%; text-align: left; border-collapse: collapse;">
            <tr>
                <td style="padding: 10px; font-weight: bold; color: #1e3a8a;">提醒项目</td>
                <td style="padding: 10px; color: #333;">%s</td>
            </tr>
            <tr>
                <td style="padding: 10px; font-weight: bold; color: #1e3a8a;">设备型号</td>
                <td style="padding: 10px; color: #333;">%s</td>
            </tr>
            <tr>
                <td style="padding: 10px; font-weight: bold; color: #1e3a8a;">到期日</td>
                <td style="padding: 10px; color: #ef4444; font-weight: bold;">%s</td>
            </tr>
        </table>
        <p style="font-size: 14px; color: #888; margin-top: 30px;">处理完成后请到提醒页面删除该条目。</p>
    </div>
</div>
`, task.ItemName, task.ItemName, modelNameOrDefault(task), task.DueDate.Format("2006-01-02"))
}

func modelNameOrDefault(task models.Task) string {
	if task.ModelName == "" {
		return "无"
	}
	return task.ModelName
}
