package config

// SafeErrorMessage 生产环境下不向客户端暴露内部错误详情，避免信息泄露
// debug 模式返回 fallback 加原始错误，release 模式只返回 fallback
func SafeErrorMessage(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	if GlobalConfig != nil && GlobalConfig.Server.Mode == "release" {
		return fallback
	}
	return fallback + ": " + err.Error()
}
