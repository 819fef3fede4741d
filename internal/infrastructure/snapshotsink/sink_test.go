package snapshotsink

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"wallet_export/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

const wallet = "0x3759468f9fd589665c8affbe52414ef77f863f72"

func emptySnapshot() *entity.WalletSnapshot {
	return &entity.WalletSnapshot{
		Wallet:      wallet,
		Fungible:    []entity.FungibleBalance{},
		NonFungible: entity.NewNonFungibleHoldings(),
	}
}

const emptyDocument = `{
	"wallet": "0x3759468f9fd589665c8affbe52414ef77f863f72",
	"fungible": [],
	"non_fungible": {"axies": [], "lands": [], "items": [], "runes": [], "charms": []}
}`

func TestUnitWriterSink(t *testing.T) {
	var buf bytes.Buffer
	sink, err := New(ModeStdout, &buf, "")
	require.NoError(t, err)

	require.NoError(t, sink.Write(emptySnapshot()))
	require.JSONEq(t, emptyDocument, buf.String())
}

func TestUnitFileSinkCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")
	sink := NewFileSink(dir)

	snapshot := emptySnapshot()
	snapshot.NonFungible.Runes = [][2]string{{"rune_fire_1", "7"}}
	require.NoError(t, sink.Write(snapshot))

	data, err := os.ReadFile(filepath.Join(dir, wallet+".json"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"rune_fire_1"`)
	require.Contains(t, string(data), `"7"`)
}

func TestUnitNewRejectsUnknownMode(t *testing.T) {
	_, err := New("s3", nil, "")
	require.Error(t, err)
}
