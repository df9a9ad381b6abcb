package model

// Usuario 用户表 — 对应 usuarios
type Usuario struct {
	UsuarioID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"usuario_id"`
	Nome      string `gorm:"type:varchar(120);not null"                     json:"nome"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	SenhaHash string `gorm:"type:varchar(100);not null"                     json:"-"`
	BaseModel
}

// TableName 指定表名
func (Usuario) TableName() string { return "usuarios" }
