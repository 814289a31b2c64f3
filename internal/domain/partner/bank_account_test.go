package partner

import (
	"testing"

	"github.com/compras/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBankAccount(t *testing.T) {
	supplierID := uuid.New()

	t.Run("valid account", func(t *testing.T) {
		a, err := NewBankAccount(supplierID, "Conta principal", "Banco do Brasil", "1234-5", "98765-0", "123.456.789-00")
		require.NoError(t, err)
		assert.Equal(t, supplierID, a.SupplierID)
		assert.False(t, a.IsDefault)
	})

	t.Run("missing supplier rejected", func(t *testing.T) {
		_, err := NewBankAccount(uuid.Nil, "n", "b", "", "c", "")
		assert.Error(t, err)
	})

	t.Run("missing nickname rejected", func(t *testing.T) {
		_, err := NewBankAccount(supplierID, "", "b", "", "c", "")
		assert.Error(t, err)
	})

	t.Run("missing account number rejected", func(t *testing.T) {
		_, err := NewBankAccount(supplierID, "n", "b", "", "", "")
		assert.Error(t, err)
	})
}

func TestBankAccountDocumentKind(t *testing.T) {
	supplierID := uuid.New()

	cpf, err := NewBankAccount(supplierID, "n", "b", "", "c", "123.456.789-00")
	require.NoError(t, err)
	assert.Equal(t, "CPF", cpf.DocumentKind())

	cnpj, err := NewBankAccount(supplierID, "n", "b", "", "c", "12.345.678/0001-90")
	require.NoError(t, err)
	assert.Equal(t, "CNPJ", cnpj.DocumentKind())
}

func TestBankAccountPaymentText(t *testing.T) {
	a, err := NewBankAccount(uuid.New(), "Conta da feira", "Itaú", "0001", "12345-6", "123.456.789-00")
	require.NoError(t, err)

	text := a.PaymentText(valueobject.NewMoneyBRLFromFloat(85))

	assert.Contains(t, text, "Conta da feira")
	assert.Contains(t, text, "R$ 85.00")
	assert.Contains(t, text, "Banco: Itaú")
	assert.Contains(t, text, "Agência: 0001")
	assert.Contains(t, text, "Conta: 12345-6")
	assert.Contains(t, text, "CPF: 123.456.789-00")
}

func TestBankAccountDefaultFlag(t *testing.T) {
	a, err := NewBankAccount(uuid.New(), "n", "b", "", "c", "")
	require.NoError(t, err)

	a.MarkDefault()
	assert.True(t, a.IsDefault)
	a.UnmarkDefault()
	assert.False(t, a.IsDefault)
}
