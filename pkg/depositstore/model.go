package depositstore

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/uptrace/bun"

	"github.com/routelabs/sweep-middleware/pkg/deposit"
)

// DepositDao is a data access object that maps directly to the 'deposits' table in PostgreSQL.
type DepositDao struct {
	bun.BaseModel `bun:"table:deposits,alias:d"`
	ID            int64      `bun:"id,pk,autoincrement"`
	UserAddress   []byte     `bun:"user_address,notnull,type:bytea"`
	Salt          []byte     `bun:"salt,unique,notnull,type:bytea"`
	Address       []byte     `bun:"address,unique,notnull,type:bytea"`
	Status        string     `bun:"status,notnull,type:varchar(16)"`
	RouteTxHash   *string    `bun:"route_tx_hash,type:varchar(66)"`
	LastError     *string    `bun:"last_error,type:text"`
	ClaimedAt     *time.Time `bun:"claimed_at"`
	CreatedAt     time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// toDepositDao converts a deposit.Deposit to DepositDao.
func toDepositDao(dep *deposit.Deposit) *DepositDao {
	dao := &DepositDao{
		ID:          dep.ID,
		UserAddress: dep.User.Bytes(),
		Salt:        append([]byte(nil), dep.Salt...),
		Address:     dep.Address.Bytes(),
		Status:      string(dep.Status),
	}
	if dep.RouteTxHash != "" {
		dao.RouteTxHash = &dep.RouteTxHash
	}
	if dep.LastError != "" {
		dao.LastError = &dep.LastError
	}
	return dao
}

// toDeposit converts a DepositDao to deposit.Deposit.
func toDeposit(dao *DepositDao) *deposit.Deposit {
	dep := &deposit.Deposit{
		ID:        dao.ID,
		User:      common.BytesToAddress(dao.UserAddress),
		Salt:      append([]byte(nil), dao.Salt...),
		Address:   common.BytesToAddress(dao.Address),
		Status:    deposit.Status(dao.Status),
		CreatedAt: dao.CreatedAt,
		UpdatedAt: dao.UpdatedAt,
	}
	if dao.RouteTxHash != nil {
		dep.RouteTxHash = *dao.RouteTxHash
	}
	if dao.LastError != nil {
		dep.LastError = *dao.LastError
	}
	return dep
}
