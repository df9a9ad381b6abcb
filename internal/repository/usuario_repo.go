package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aquario-ufpb/aquario-sub003/internal/model"
)

// UsuarioRepository 用户数据访问接口
type UsuarioRepository interface {
	GetByID(ctx context.Context, id string) (*model.Usuario, error)
	GetByEmail(ctx context.Context, email string) (*model.Usuario, error)
}

type usuarioRepo struct {
	db *gorm.DB
}

// NewUsuarioRepo 创建 UsuarioRepository 实例
func NewUsuarioRepo(db *gorm.DB) UsuarioRepository {
	return &usuarioRepo{db: db}
}

func (r *usuarioRepo) GetByID(ctx context.Context, id string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("usuario_id = ?", id).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *usuarioRepo) GetByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	var usuario model.Usuario
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}
