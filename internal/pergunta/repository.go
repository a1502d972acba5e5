package pergunta

import (
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *Pergunta) error
	Listar(db *gorm.DB) ([]Pergunta, error)
	ListarAtivas(db *gorm.DB) ([]Pergunta, error)
	BuscarPorID(db *gorm.DB, id uint) (*Pergunta, error)
	Atualizar(db *gorm.DB, p *Pergunta) error
	AtualizarAtiva(db *gorm.DB, id uint, ativa bool) error
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *Pergunta) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB) ([]Pergunta, error) {
	var list []Pergunta
	err := db.Order("ordem, id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListarAtivas(db *gorm.DB) ([]Pergunta, error) {
	var list []Pergunta
	err := db.Where("ativa = ?", true).Order("ordem, id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Pergunta, error) {
	var p Pergunta
	err := db.First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, p *Pergunta) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) AtualizarAtiva(db *gorm.DB, id uint, ativa bool) error {
	return db.Model(&Pergunta{}).Where("id = ?", id).Update("ativa", ativa).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	// Exclusão definitiva: o fluxo normal é desativar, não apagar
	return db.Unscoped().Delete(&Pergunta{}, id).Error
}
