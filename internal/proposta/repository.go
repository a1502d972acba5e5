package proposta

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Proposta) error
	Listar(db *gorm.DB) ([]Proposta, error)
	ListarPorDiagnostico(db *gorm.DB, diagnosticoID uint) ([]Proposta, error)
	BuscarPorID(db *gorm.DB, id uint) (*Proposta, error)
	Atualizar(db *gorm.DB, p *Proposta) error
	AtualizarStatus(db *gorm.DB, id uint, status string) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Proposta) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Proposta, error) {
	var list []Proposta
	err := db.Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarPorDiagnostico(db *gorm.DB, diagnosticoID uint) ([]Proposta, error) {
	var list []Proposta
	err := db.Where("diagnostico_id = ?", diagnosticoID).Order("created_at desc").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Proposta, error) {
	var p Proposta
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Proposta) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, id uint, status string) error {
	return db.Model(&Proposta{}).Where("id = ?", id).Update("status", status).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Delete(&Proposta{}, id).Error
}
