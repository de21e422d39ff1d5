package api

import (
	"housebook/database"
	"housebook/models"
	"housebook/service"

	"github.com/gin-gonic/gin"
)

// TaskHandler 维护提醒处理器
type TaskHandler struct {
	sched *service.Scheduler
	mail  service.Mailer
}

// NewTaskHandler 创建维护提醒处理器
func NewTaskHandler(sched *service.Scheduler, mail service.Mailer) *TaskHandler {
	return &TaskHandler{sched: sched, mail: mail}
}

// TaskForm 维护提醒表单
type TaskForm struct {
	ItemName  string `form:"item_name" binding:"required" example:"净水器滤芯更换"`
	ModelName string `form:"model_name" example:"SU-3000"`
	DueDate   string `form:"due_date" binding:"required" example:"2025-09-30"`
	Email     string `form:"email" binding:"required,email" example:"family@example.com"`
}

// AddForm 提醒登记页数据
// @Summary 提醒登记页
// @Tags 提醒
// @Produce json
// @Success 200 {object} Response
// @Router /add_notification [get]
func (h *TaskHandler) AddForm(c *gin.Context) {
	Success(c, gin.H{"today": today()})
}

// Create 登记维护提醒
// 入库后立即发送登记确认邮件（后台发送，不阻塞请求），并按到期日注册
// 两条一次性提醒触发；到期日已过则静默跳过注册。邮件与调度的失败
// 对用户不可见，登记始终按成功处理。
// @Summary 登记维护提醒
// @Tags 提醒
// @Accept x-www-form-urlencoded
// @Param item_name formData string true "提醒项目"
// @Param model_name formData string false "设备型号"
// @Param due_date formData string true "到期日 (2025-09-30)"
// @Param email formData string true "通知邮箱"
// @Success 303 "登记成功，重定向到仪表盘"
// @Failure 400 {object} Response "请求参数错误"
// @Router /add_notification [post]
func (h *TaskHandler) Create(c *gin.Context) {
	var req TaskForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		BadRequest(c, "到期日格式错误，应为: 2006-01-02")
		return
	}

	task := models.Task{
		ItemName:  req.ItemName,
		ModelName: req.ModelName,
		DueDate:   dueDate,
		Email:     req.Email,
	}

	if err := database.DB.Create(&task).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "登记提醒失败"))
		return
	}

	go h.mail.SendRegisteredNotice(task)
	h.sched.ScheduleTask(task)

	SeeOther(c, "/")
}

// EditForm 提醒编辑页数据
// @Summary 提醒编辑页
// @Tags 提醒
// @Produce json
// @Param id path int true "提醒ID"
// @Success 200 {object} Response{data=models.Task}
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_notification/{id} [get]
func (h *TaskHandler) EditForm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var task models.Task
	if err := database.DB.First(&task, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	Success(c, gin.H{"task": task, "today": today()})
}

// Update 更新维护提醒
// 只修改记录本身，不改动已注册的触发；提醒时间以登记时的到期日为准
// @Summary 更新维护提醒
// @Tags 提醒
// @Accept x-www-form-urlencoded
// @Param id path int true "提醒ID"
// @Success 303 "更新成功，重定向到仪表盘"
// @Failure 400 {object} Response "请求参数错误"
// @Failure 404 {object} Response "记录不存在"
// @Router /edit_notification/{id} [post]
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var task models.Task
	if err := database.DB.First(&task, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	var req TaskForm
	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "参数错误"))
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		BadRequest(c, "到期日格式错误，应为: 2006-01-02")
		return
	}

	updates := map[string]interface{}{
		"item_name":  req.ItemName,
		"model_name": req.ModelName,
		"due_date":   dueDate,
		"email":      req.Email,
	}

	if err := database.DB.Model(&task).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "更新失败"))
		return
	}

	SeeOther(c, "/")
}

// Delete 删除维护提醒
// 已注册的触发不随删除撤销，触发时仍可能发出提醒邮件
// @Summary 删除维护提醒
// @Tags 提醒
// @Param id path int true "提醒ID"
// @Success 303 "删除成功，重定向到仪表盘"
// @Failure 404 {object} Response "记录不存在"
// @Router /delete_notification/{id} [post]
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var task models.Task
	if err := database.DB.First(&task, id).Error; err != nil {
		NotFound(c, "记录不存在")
		return
	}

	if err := database.DB.Delete(&task).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "删除失败"))
		return
	}

	SeeOther(c, "/")
}
