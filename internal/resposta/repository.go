package resposta

import (
	"gorm.io/gorm"
)

type Repository interface {
	SalvarLote(db *gorm.DB, respostas []Resposta) error
	ListarPorDiagnostico(db *gorm.DB, diagnosticoID uint) ([]Resposta, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) SalvarLote(db *gorm.DB, respostas []Resposta) error {
	if len(respostas) == 0 {
		return nil
	}
	return db.Create(&respostas).Error
}

func (r *repositoryImpl) ListarPorDiagnostico(db *gorm.DB, diagnosticoID uint) ([]Resposta, error) {
	var list []Resposta
	err := db.Where("diagnostico_id = ?", diagnosticoID).Order("pergunta_id").Find(&list).Error
	return list, err
}
