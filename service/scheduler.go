package service

import (
	"log"
	"time"

	"housebook/models"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// Scheduler 提醒调度器
// 触发项只存在于内存中；进程重启后由 Reload 依据任务表重建。
// 触发是一次性的、尽力而为的：进程不在时错过的触发不会补发，
// 删除任务也不会撤销已注册的触发。
type Scheduler struct {
	cron *cron.Cron
	now  func() time.Time // 可注入假时钟
	mail Mailer
	hour int // 提醒发送时刻（当地时间整点）
}

// NewScheduler 创建提醒调度器
func NewScheduler(mail Mailer, hour int) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		now:  time.Now,
		mail: mail,
		hour: hour,
	}
}

// onceAt 一次性触发的 cron 调度：到点触发一次，之后返回零值时间，不再被调度。
// cron 不会移除返回零值的条目，已触发或已错过的条目会留在条目表中直到进程退出
type onceAt struct {
	at time.Time
}

func (s onceAt) Next(t time.Time) time.Time {
	if t.Before(s.at) {
		return s.at
	}
	return time.Time{}
}

// Start 启动调度器
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度器，之后不再有新的触发执行
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// ScheduleTask 为任务注册到期提醒
// 到期日早于今天则不注册（静默跳过）；否则注册两条一次性触发：
// 到期日当天与前一天，各在配置的提醒时刻。返回实际注册的触发时间。
func (s *Scheduler) ScheduleTask(task models.Task) []time.Time {
	today := dateOnly(s.now())
	due := dateOnly(task.DueDate)
	if due.Before(today) {
		return nil
	}

	runs := []time.Time{
		s.runAt(due),
		s.runAt(due.AddDate(0, 0, -1)),
	}
	for _, at := range runs {
		t := task
		s.cron.Schedule(onceAt{at: at}, cron.FuncJob(func() {
			s.mail.SendDueReminder(t)
		}))
	}
	log.Printf("已注册到期提醒: %s (到期 %s)", task.ItemName, due.Format("2006-01-02"))
	return runs
}

// Reload 依据任务表重建内存中的触发项
// 只恢复到期日不早于今天的任务；已经错过的触发时间不补发。
func (s *Scheduler) Reload(db *gorm.DB) error {
	var tasks []models.Task
	if err := db.Find(&tasks).Error; err != nil {
		return err
	}
	restored := 0
	for _, t := range tasks {
		if len(s.ScheduleTask(t)) > 0 {
			restored++
		}
	}
	log.Printf("恢复了 %d 个任务的到期提醒", restored)
	return nil
}

// Pending 当前内存中已注册的触发条目数
// 含已触发和已错过的一次性条目：条目注册后不会被移除
func (s *Scheduler) Pending() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) runAt(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.hour, 0, 0, 0, time.Local)
}

// dateOnly 去掉时分秒，只保留当地时区的日历日期
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}
