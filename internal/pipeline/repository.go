package pipeline

import (
	"gorm.io/gorm"
)

type Repository interface {
	SalvarColuna(db *gorm.DB, c *Coluna) error
	ListarColunas(db *gorm.DB) ([]Coluna, error)
	BuscarColuna(db *gorm.DB, id uint) (*Coluna, error)
	AtualizarColuna(db *gorm.DB, c *Coluna) error
	ContarColunas(db *gorm.DB) (int64, error)
	DeletarColuna(db *gorm.DB, id uint) error

	SalvarLead(db *gorm.DB, l *Lead) error
	ListarLeads(db *gorm.DB) ([]Lead, error)
	BuscarLead(db *gorm.DB, id uint) (*Lead, error)
	AtualizarLead(db *gorm.DB, l *Lead) error
	MoverLead(db *gorm.DB, leadID, colunaID uint) error
	DeletarLead(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) SalvarColuna(db *gorm.DB, c *Coluna) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) ListarColunas(db *gorm.DB) ([]Coluna, error) {
	var list []Coluna
	err := db.Order("ordem, id").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarColuna(db *gorm.DB, id uint) (*Coluna, error) {
	var c Coluna
	err := db.First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) AtualizarColuna(db *gorm.DB, c *Coluna) error {
	return db.Save(c).Error
}

func (r *repositoryImpl) ContarColunas(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&Coluna{}).Count(&count).Error
	return count, err
}

func (r *repositoryImpl) DeletarColuna(db *gorm.DB, id uint) error {
	return db.Delete(&Coluna{}, id).Error
}

func (r *repositoryImpl) SalvarLead(db *gorm.DB, l *Lead) error {
	return db.Create(l).Error
}

func (r *repositoryImpl) ListarLeads(db *gorm.DB) ([]Lead, error) {
	var list []Lead
	err := db.Order("created_at").Find(&list).Error
	return list, err
}

func (r *repositoryImpl) BuscarLead(db *gorm.DB, id uint) (*Lead, error) {
	var l Lead
	err := db.First(&l, id).Error
	return &l, err
}

func (r *repositoryImpl) AtualizarLead(db *gorm.DB, l *Lead) error {
	return db.Save(l).Error
}

// MoverLead troca a coluna do lead num único UPDATE de campo, o equivalente
// do drop do board.
func (r *repositoryImpl) MoverLead(db *gorm.DB, leadID, colunaID uint) error {
	return db.Model(&Lead{}).Where("id = ?", leadID).Update("coluna_id", colunaID).Error
}

func (r *repositoryImpl) DeletarLead(db *gorm.DB, id uint) error {
	return db.Delete(&Lead{}, id).Error
}
