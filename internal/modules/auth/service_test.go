package auth

import (
	"fmt"
	"testing"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	dup := &mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry 'ann' for key 'username'"}

	assert.True(t, isDuplicateKey(dup))
	assert.True(t, isDuplicateKey(fmt.Errorf("create user: %w", dup)))
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))

	assert.False(t, isDuplicateKey(&mysqldrv.MySQLError{Number: 1213}))
	assert.False(t, isDuplicateKey(gorm.ErrRecordNotFound))
	assert.False(t, isDuplicateKey(fmt.Errorf("plain failure")))
}
