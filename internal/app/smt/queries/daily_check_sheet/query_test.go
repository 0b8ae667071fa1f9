package daily_check_sheet

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/smt-console/internal/app/smt/domain"
	"github.com/light-bringer/smt-console/internal/app/smt/repo"
	"github.com/light-bringer/smt-console/internal/models/m_check_master"
	"github.com/light-bringer/smt-console/internal/models/m_check_result"
	"github.com/light-bringer/smt-console/internal/models/m_check_signature"
	"github.com/light-bringer/smt-console/internal/testutil"
)

func TestExecute(t *testing.T) {
	env := testutil.NewEnv(t)
	env.Seed(m_check_master.SheetName, m_check_master.Schema(),
		[]string{"L1", "E1", "Mounter", "temp", "", "", "numeric", "20", "26", "C"},
		[]string{"L1", "E1", "Mounter", "clean", "", "", "pass-fail", "", "", ""},
		[]string{"L2", "E5", "Oven", "zone1", "", "", "numeric", "", "", ""},
	)
	env.Seed(m_check_result.SheetName, m_check_result.Schema(),
		[]string{"2024-05-01", "L1", "E1", "temp", "27", "NG", "kim", "2024-05-01 08:00:00.000000"},
		[]string{"2024-05-01", "L1", "E1", "temp", "24", "OK", "kim", "2024-05-01 09:00:00.000000"},
		[]string{"2024-05-01", "L1", "E7", "extra", "x", "NG", "kim", "2024-05-01 09:00:00.000000"},
		[]string{"2024-04-30", "L1", "E1", "clean", "O", "OK", "kim", "2024-04-30 09:00:00.000000"},
	)
	env.Seed(m_check_signature.SheetName, m_check_signature.Schema(),
		[]string{"2024-05-01", "L1", "lee", "sig-a", "2024-05-01 10:00:00.000000"},
		[]string{"2024-05-01", "L1", "lee", "sig-b", "2024-05-01 11:00:00.000000"},
	)
	q := NewQuery(repo.NewCheckRepository(env.Store), testutil.NewMockClock())

	sheet, err := q.Execute(context.Background(), &Request{Line: "L1"})
	require.NoError(t, err)

	assert.Equal(t, "2024-05-01", sheet.Date)
	require.Len(t, sheet.Rows, 2)
	require.NotNil(t, sheet.Rows[0].Result)
	assert.Equal(t, "24", sheet.Rows[0].Result.Value)
	assert.Equal(t, domain.CheckNumeric, sheet.Rows[0].Item.Type)
	assert.Nil(t, sheet.Rows[1].Result, "yesterday's result does not count")

	assert.Equal(t, 1, sheet.Checked)
	assert.Equal(t, 0, sheet.NG)
	assert.False(t, sheet.Complete())

	require.Len(t, sheet.Unlisted, 1)
	assert.Equal(t, "E7", sheet.Unlisted[0].EquipID)

	require.Len(t, sheet.Signatures, 1)
	assert.Equal(t, "sig-b", sheet.Signatures[0].Data)
}

func TestExecute_Validation(t *testing.T) {
	q := NewQuery(repo.NewCheckRepository(testutil.NewEnv(t).Store), testutil.NewMockClock())

	_, err := q.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, domain.ErrEmptyLine)

	_, err = q.Execute(context.Background(), &Request{Line: "L1", Date: "yesterday"})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}
