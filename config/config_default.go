package config

// DefaultConfigYAML 内置默认配置
// 外部 config.yaml 与 HOUSE_ 前缀环境变量可覆盖其中任意项
var DefaultConfigYAML = []byte(`server:
  port: ":8080"
  mode: "debug"

database:
  host: "127.0.0.1"
  port: "3306"
  username: "root"
  password: ""
  dbname: "housebook"
  charset: "utf8mb4"

auth:
  password: ""

email:
  enabled: false
  host: "smtp.gmail.com"
  port: 587
  username: ""
  password: ""
  from: "居家账本"

dashboard:
  exclude_categories:
    - "贷款"
    - "负债"

reminder:
  hour: 9
`)
