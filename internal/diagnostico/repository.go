package diagnostico

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, d *Diagnostico) error
	ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Diagnostico, error)
	BuscarPorID(db *gorm.DB, id uint) (*Diagnostico, error)
	Atualizar(db *gorm.DB, d *Diagnostico) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, d *Diagnostico) error {
	return db.Create(d).Error
}

func (r *repositoryImpl) ListarPorEmpresa(db *gorm.DB, empresaID uint) ([]Diagnostico, error) {
	var list []Diagnostico
	err := db.Where("empresa_id = ?", empresaID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Diagnostico, error) {
	var d Diagnostico
	err := db.First(&d, id).Error
	return &d, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, d *Diagnostico) error {
	return db.Save(d).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Diagnostico{}, id).Error
}
