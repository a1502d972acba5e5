package plano

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Plano) error
	Listar(db *gorm.DB) ([]Plano, error)
	BuscarPorID(db *gorm.DB, id uint) (*Plano, error)
	Atualizar(db *gorm.DB, p *Plano) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Plano) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Plano, error) {
	var list []Plano
	err := db.Order("nome").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Plano, error) {
	var p Plano
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Plano) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Plano{}, id).Error
}
