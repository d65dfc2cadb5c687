package repository

import (
	"time"

	"giramae/internal/domain/entities"
)

// Postgres row models. Table names follow the marketplace schema (itens, reservas,
// fila_espera, carteiras, transacoes) so the service can run against the existing
// database as well as a fresh AutoMigrate.

type ItemModel struct {
	ID                string  `gorm:"primaryKey;type:uuid"`
	Titulo            string  `gorm:"not null"`
	Categoria         string
	EstadoConservacao string
	ValorGirinhas     float64 `gorm:"type:numeric(12,2);not null"`
	Status            string  `gorm:"index;not null"`
	PublicadoPor      string  `gorm:"index;not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (ItemModel) TableName() string { return "itens" }

type ReservationModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	ItemID            string    `gorm:"index;not null"`
	UsuarioReservou   string    `gorm:"index;not null"`
	UsuarioItem       string    `gorm:"index;not null"`
	ValorGirinhas     float64   `gorm:"type:numeric(12,2);not null"`
	Status            string    `gorm:"index:idx_reservas_status_prazo,priority:1;not null"`
	CodigoConfirmacao string    `gorm:"size:6"`
	PrazoExpiracao    time.Time `gorm:"index:idx_reservas_status_prazo,priority:2"`
	DataReserva       time.Time
	DataConfirmacao   *time.Time
	DataCancelamento  *time.Time
}

func (ReservationModel) TableName() string { return "reservas" }

type QueueEntryModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ItemID    string `gorm:"uniqueIndex:idx_fila_item_usuario;not null"`
	UsuarioID string `gorm:"uniqueIndex:idx_fila_item_usuario;not null"`
	Posicao   int    `gorm:"not null"`
	CreatedAt time.Time
}

func (QueueEntryModel) TableName() string { return "fila_espera" }

type WalletModel struct {
	UserID        string  `gorm:"primaryKey"`
	SaldoAtual    float64 `gorm:"type:numeric(12,2);not null;check:saldo_atual >= 0"`
	TotalRecebido float64 `gorm:"type:numeric(12,2);not null"`
	TotalGasto    float64 `gorm:"type:numeric(12,2);not null"`
	UpdatedAt     time.Time
}

func (WalletModel) TableName() string { return "carteiras" }

type TransactionModel struct {
	ID         string  `gorm:"primaryKey;type:uuid"`
	UserID     string  `gorm:"index;not null"`
	Tipo       string  `gorm:"not null"`
	Valor      float64 `gorm:"type:numeric(12,2);not null"`
	Descricao  string
	Referencia string  `gorm:"uniqueIndex;not null"`
	ReservaID  *string `gorm:"index"`
	CreatedAt  time.Time
}

func (TransactionModel) TableName() string { return "transacoes" }

type PushSubscriptionModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"index;not null"`
	DeviceToken string `gorm:"uniqueIndex;not null"`
	EndpointArn string `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (PushSubscriptionModel) TableName() string { return "push_subscriptions" }

type BlogPostModel struct {
	ID          uint   `gorm:"primaryKey"`
	Slug        string `gorm:"uniqueIndex"`
	Title       string
	Status      string `gorm:"index"`
	PublishedAt *time.Time
	UpdatedAt   time.Time
}

func (BlogPostModel) TableName() string { return "blog_posts" }

type BlogCategoryModel struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Slug      string
	UpdatedAt time.Time
}

func (BlogCategoryModel) TableName() string { return "blog_categories" }

type BlogTagModel struct {
	ID        uint `gorm:"primaryKey"`
	Name      string
	Slug      string
	UpdatedAt time.Time
}

func (BlogTagModel) TableName() string { return "blog_tags" }

// AutoMigrateModels lists every model owned by the Postgres store.
func AutoMigrateModels() []any {
	return []any{
		&ItemModel{},
		&ReservationModel{},
		&QueueEntryModel{},
		&WalletModel{},
		&TransactionModel{},
		&PushSubscriptionModel{},
		&BlogPostModel{},
		&BlogCategoryModel{},
		&BlogTagModel{},
	}
}

func toItemModel(i entities.Item) ItemModel {
	return ItemModel{
		ID:                i.ID,
		Titulo:            i.Titulo,
		Categoria:         i.Categoria,
		EstadoConservacao: i.EstadoConservacao,
		ValorGirinhas:     i.ValorGirinhas,
		Status:            string(i.Status),
		PublicadoPor:      i.PublicadoPor,
		CreatedAt:         i.CreatedAt,
		UpdatedAt:         i.UpdatedAt,
	}
}

func fromItemModel(m ItemModel) entities.Item {
	return entities.Item{
		ID:                m.ID,
		Titulo:            m.Titulo,
		Categoria:         m.Categoria,
		EstadoConservacao: m.EstadoConservacao,
		ValorGirinhas:     m.ValorGirinhas,
		Status:            entities.ItemStatus(m.Status),
		PublicadoPor:      m.PublicadoPor,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toReservationModel(r entities.Reservation) ReservationModel {
	return ReservationModel{
		ID:                r.ID,
		ItemID:            r.ItemID,
		UsuarioReservou:   r.UsuarioReservou,
		UsuarioItem:       r.UsuarioItem,
		ValorGirinhas:     r.ValorGirinhas,
		Status:            string(r.Status),
		CodigoConfirmacao: r.CodigoConfirmacao,
		PrazoExpiracao:    r.PrazoExpiracao,
		DataReserva:       r.DataReserva,
		DataConfirmacao:   r.DataConfirmacao,
		DataCancelamento:  r.DataCancelamento,
	}
}

func fromReservationModel(m ReservationModel) entities.Reservation {
	return entities.Reservation{
		ID:                m.ID,
		ItemID:            m.ItemID,
		UsuarioReservou:   m.UsuarioReservou,
		UsuarioItem:       m.UsuarioItem,
		ValorGirinhas:     m.ValorGirinhas,
		Status:            entities.ReservationStatus(m.Status),
		CodigoConfirmacao: m.CodigoConfirmacao,
		PrazoExpiracao:    m.PrazoExpiracao,
		DataReserva:       m.DataReserva,
		DataConfirmacao:   m.DataConfirmacao,
		DataCancelamento:  m.DataCancelamento,
	}
}

func fromQueueEntryModel(m QueueEntryModel) entities.WaitingQueueEntry {
	return entities.WaitingQueueEntry{
		ID:        m.ID,
		ItemID:    m.ItemID,
		UsuarioID: m.UsuarioID,
		Posicao:   m.Posicao,
		CreatedAt: m.CreatedAt,
	}
}

func fromWalletModel(m WalletModel) entities.Wallet {
	return entities.Wallet{
		UserID:        m.UserID,
		SaldoAtual:    m.SaldoAtual,
		TotalRecebido: m.TotalRecebido,
		TotalGasto:    m.TotalGasto,
		UpdatedAt:     m.UpdatedAt,
	}
}

func fromTransactionModel(m TransactionModel) entities.Transaction {
	return entities.Transaction{
		ID:         m.ID,
		UserID:     m.UserID,
		Tipo:       entities.TransactionType(m.Tipo),
		Valor:      m.Valor,
		Descricao:  m.Descricao,
		Referencia: m.Referencia,
		ReservaID:  m.ReservaID,
		CreatedAt:  m.CreatedAt,
	}
}
