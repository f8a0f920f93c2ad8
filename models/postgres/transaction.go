package postgres

import (
	"time"

	uuid "github.com/satori/go.uuid"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TxBuyProperty        TransactionType = "BUY_PROPERTY"
	TxPayRent            TransactionType = "PAY_RENT"
	TxPayTax             TransactionType = "PAY_TAX"
	TxCollectGo          TransactionType = "COLLECT_GO"
	TxJailFine           TransactionType = "JAIL_FINE"
	TxChanceCard         TransactionType = "CHANCE_CARD"
	TxCommunityChestCard TransactionType = "COMMUNITY_CHEST_CARD"
	TxBuildHouse         TransactionType = "BUILD_HOUSE"
	TxBuildHotel         TransactionType = "BUILD_HOTEL"
	TxMortgage           TransactionType = "MORTGAGE"
	TxUnmortgage         TransactionType = "UNMORTGAGE"
	TxSellHouse          TransactionType = "SELL_HOUSE"
	TxTrade              TransactionType = "TRADE"
	TxAuction            TransactionType = "AUCTION"
	TxBankruptcy         TransactionType = "BANKRUPTCY"
)

// Transaction is the append-only audit record. Rows are written once and
// never updated, the history endpoint reads them in reverse order.
type Transaction struct {
	ID          string          `gorm:"primaryKey;size:50;not null"`
	RoomID      string          `gorm:"size:50;not null;index:idx_transactions_room"`
	Type        TransactionType `gorm:"size:30;not null"`
	Amount      int             `gorm:"default:0"`
	FromPlayer  *string         `gorm:"size:50"`
	ToPlayer    *string         `gorm:"size:50"`
	Description string          `gorm:"size:255"`
	CreatedAt   time.Time       `gorm:"default:CURRENT_TIMESTAMP;index:idx_transactions_created"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) (err error) {
	if t.ID == "" {
		t.ID = uuid.NewV4().String()
	}
	return nil
}
