package configuracao

import (
	"gorm.io/gorm"
)

type Repository interface {
	SalvarConfiguracao(db *gorm.DB, c *Configuracao) error
	ListarConfiguracoes(db *gorm.DB) ([]Configuracao, error)
	BuscarConfiguracao(db *gorm.DB, id uint) (*Configuracao, error)
	AtualizarConfiguracao(db *gorm.DB, c *Configuracao) error
	DeletarConfiguracao(db *gorm.DB, id uint) error

	SalvarIntegracao(db *gorm.DB, i *Integracao) error
	ListarIntegracoes(db *gorm.DB) ([]Integracao, error)
	BuscarIntegracao(db *gorm.DB, id uint) (*Integracao, error)
	AtualizarIntegracao(db *gorm.DB, i *Integracao) error
	DeletarIntegracao(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) SalvarConfiguracao(db *gorm.DB, c *Configuracao) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarConfiguracoes(db *gorm.DB) ([]Configuracao, error) {
	var list []Configuracao
	err := db.Order("chave").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarConfiguracao(db *gorm.DB, id uint) (*Configuracao, error) {
	var c Configuracao
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) AtualizarConfiguracao(db *gorm.DB, c *Configuracao) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) DeletarConfiguracao(db *gorm.DB, id uint) error {
	return db.Delete(&Configuracao{}, id).Error
}

func (r *repositoryImpl) SalvarIntegracao(db *gorm.DB, i *Integracao) error {
	return db.Create(i).Error
}

func (r *repositoryImpl) ListarIntegracoes(db *gorm.DB) ([]Integracao, error) {
	var list []Integracao
	err := db.Order("nome").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarIntegracao(db *gorm.DB, id uint) (*Integracao, error) {
	var i Integracao
	err := db.First(&i, id).Error
	return &i, err
}

func (r *repositoryImpl) AtualizarIntegracao(db *gorm.DB, i *Integracao) error {
	return db.Save(i).Error
}

func (r *repositoryImpl) DeletarIntegracao(db *gorm.DB, id uint) error {
	return db.Delete(&Integracao{}, id).Error
}
