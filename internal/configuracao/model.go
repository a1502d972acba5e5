package configuracao

import (
	"time"

	"gorm.io/gorm"
)

// Configuracao é um par chave/valor de preferências; EmpresaID nulo indica
// configuração global da consultoria.
type Configuracao struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EmpresaID *uint  `gorm:"uniqueIndex:idx_config_empresa_chave" json:"empresaId,omitempty"`
	Chave     string `gorm:"not null;uniqueIndex:idx_config_empresa_chave" json:"chave"`
	Valor     string `gorm:"type:text" json:"valor"`
}

func (Configuracao) TableName() string {
	return "configuracoes"
}

// Integracao registra uma integração externa habilitada (chave de API etc.)
type Integracao struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Nome  string `gorm:"uniqueIndex;not null" json:"nome"`
	Chave string `json:"-"`
	Ativa bool   `gorm:"default:false" json:"ativa"`
}

func (Integracao) TableName() string {
	return "integracoes"
}
