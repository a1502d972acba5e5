package empresa

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, e *Empresa) error
	Listar(db *gorm.DB) ([]Empresa, error)
	BuscarPorID(db *gorm.DB, id uint) (*Empresa, error)
	Atualizar(db *gorm.DB, e *Empresa) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, e *Empresa) error {
	return db.Create(e).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Empresa, error) {
	var list []Empresa
	err := db.Order("nome").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Empresa, error) {
	var e Empresa
	err := db.First(&e, id).Error
	return &e, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, e *Empresa) error {
	return db.Save(e).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Empresa{}, id).Error
}
