package ofx

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/calebhart/fintrack/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Sample SGML-style OFX statement with one credit and two debits.
const sampleBankOFX = `OFXHEADER:100
DATA:OFXSGML
VERSION:102
SECURITY:NONE
ENCODING:USASCII
CHARSET:1252
COMPRESSION:NONE
OLDFILEUID:NONE
NEWFILEUID:NONE

<OFX>
<SIGNONMSGSRSV1>
<SONRS>
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<DTSERVER>20240315120000[0:GMT]
<LANGUAGE>ENG
</SONRS>
</SIGNONMSGSRSV1>
<BANKMSGSRSV1>
<STMTTRNRS>
<TRNUID>1
<STATUS>
<CODE>0
<SEVERITY>INFO
</STATUS>
<STMTRS>
<CURDEF>USD
<BANKACCTFROM>
<BANKID>123456789
<ACCTID>1234567890
<ACCTTYPE>CHECKING
</BANKACCTFROM>
<BANKTRANLIST>
<DTSTART>20240101120000[0:GMT]
<DTEND>20240131120000[0:GMT]
<STMTTRN>
<TRNTYPE>CREDIT
<DTPOSTED>20240110120000[0:GMT]
<TRNAMT>2500.00
<FITID>2024011001
<NAME>PAYROLL DEPOSIT
</STMTTRN>
<STMTTRN>
<TRNTYPE>DEBIT
<DTPOSTED>20240115120000[0:GMT]
<TRNAMT>-25.50
<FITID>2024011501
<NAME>STARBUCKS STORE #1234
</STMTTRN>
<STMTTRN>
<TRNTYPE>FEE
<DTPOSTED>20240120120000[0:GMT]
<TRNAMT>-5.00
<FITID>2024012001
<NAME>MONTHLY SERVICE FEE
</STMTTRN>
</BANKTRANLIST>
<LEDGERBAL>
<BALAMT>1000.00
<DTASOF>20240131120000[0:GMT]
</LEDGERBAL>
</STMTRS>
</STMTTRNRS>
</BANKMSGSRSV1>
</OFX>`

func TestParseFile_SignMapsToType(t *testing.T) {
	parser := NewParser()

	txns, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	deposit := txns[0]
	assert.Equal(t, model.TypeIncome, deposit.Type)
	assert.InDelta(t, 2500.00, deposit.Amount, 1e-9)
	assert.Equal(t, "PAYROLL DEPOSIT", deposit.Description)

	coffee := txns[1]
	assert.Equal(t, model.TypeExpense, coffee.Type)
	assert.InDelta(t, 25.50, coffee.Amount, 1e-9, "debit amount is stored positive")
	assert.Equal(t, "STARBUCKS STORE #1234", coffee.Description)

	fee := txns[2]
	assert.Equal(t, model.TypeExpense, fee.Type)
	assert.Equal(t, "Bank Fees", fee.Category)
}

func TestParseFile_DatesAndNoIDs(t *testing.T) {
	parser := NewParser()

	txns, err := parser.ParseFile(context.Background(), strings.NewReader(sampleBankOFX))
	require.NoError(t, err)
	require.Len(t, txns, 3)

	assert.Equal(t, 2024, txns[0].Date.Year())
	assert.Equal(t, time.January, txns[0].Date.Month())

	for _, txn := range txns {
		assert.Zero(t, txn.ID, "IDs are assigned by the store, not the parser")
	}
}

func TestParseFile_InvalidInput(t *testing.T) {
	parser := NewParser()

	_, err := parser.ParseFile(context.Background(), strings.NewReader("this is not OFX"))
	require.Error(t, err)
}

func TestCategoryHint(t *testing.T) {
	tests := []struct {
		trnType string
		want    string
	}{
		{trnType: "INT", want: "Interest"},
		{trnType: "FEE", want: "Bank Fees"},
		{trnType: "ATM", want: "Cash & ATM"},
		{trnType: "DEBIT", want: "Imported"},
		{trnType: "CREDIT", want: "Imported"},
	}

	for _, tt := range tests {
		t.Run(tt.trnType, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryHint(tt.trnType))
		})
	}
}

func TestIsGenericDescription(t *testing.T) {
	assert.True(t, isGenericDescription("DEBIT"))
	assert.True(t, isGenericDescription("card purchase"))
	assert.False(t, isGenericDescription("STARBUCKS STORE #1234"))
}
