package acompanhamento

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, a *Acompanhamento) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Acompanhamento, error)
	BuscarPorID(db *gorm.DB, id uint) (*Acompanhamento, error)
	ExistePorEmpresaMes(db *gorm.DB, empresaID uint, mes string) (bool, error)
	Atualizar(db *gorm.DB, a *Acompanhamento) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, a *Acompanhamento) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Acompanhamento, error) {
	var list []Acompanhamento
	err := db.Where("empresa_id = ?", empresaID).Order("mes").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Acompanhamento, error) {
	var a Acompanhamento
	err := db.First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ExistePorEmpresaMes(db *gorm.DB, empresaID uint, mes string) (bool, error) {
	var count int64
	err := db.Model(&Acompanhamento{}).
		Where("empresa_id = ? AND mes = ?", empresaID, mes).
		Count(&count).Error
	return count > 0, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, a *Acompanhamento) error {
	return db.Save(a).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Acompanhamento{}, id).Error
}
