package badger

import (
	"encoding/binary"
	"errors"
	"fmt"

	"affiliate-escrow/internal/core/domain"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
)

// Key prefixes, one per record kind. A key is the prefix followed by the
// record's derived address; event keys append a big-endian sequence number.
const (
	prefixCampaign      byte = 'c'
	prefixAffiliateLink byte = 'l'
	prefixVault         byte = 'v'
	prefixHolding       byte = 'h'
	prefixAccount       byte = 'a'
	prefixEvent         byte = 'e'
	prefixEventSeq      byte = 's'
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	encMode, err = cbor.EncOptions{Time: cbor.TimeRFC3339Nano}.EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
}

func recordKey(prefix byte, addr domain.Address) []byte {
	key := make([]byte, 0, 1+domain.AddressLen)
	key = append(key, prefix)
	return append(key, addr[:]...)
}

func eventKey(campaign domain.Address, seq uint64) []byte {
	key := recordKey(prefixEvent, campaign)
	return binary.BigEndian.AppendUint64(key, seq)
}

var errReadOnly = errors.New("write in read-only transaction")

// ledgerTx implements port.LedgerTx over one badger transaction.
type ledgerTx struct {
	txn       *badger.Txn
	readWrite bool
}

func (t *ledgerTx) get(key []byte, dst any) error {
	item, err := t.txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.ErrNotFound
	}
	if err != nil {
		return err
	}
	val, err := item.ValueCopy(nil)
	if err != nil {
		return err
	}
	if err = decMode.Unmarshal(val, dst); err != nil {
		return fmt.Errorf("decode %q: %w", key[:1], err)
	}
	return nil
}

func (t *ledgerTx) set(key []byte, src any) error {
	if !t.readWrite {
		return errReadOnly
	}
	val, err := encMode.Marshal(src)
	if err != nil {
		return err
	}
	return t.txn.Set(key, val)
}

// create writes src at key unless key is occupied. The existence check
// adds key to the transaction's read set, so two concurrent creators of the
// same key cannot both commit.
func (t *ledgerTx) create(key []byte, src any) error {
	_, err := t.txn.Get(key)
	switch {
	case err == nil:
		return domain.ErrAlreadyExists
	case !errors.Is(err, badger.ErrKeyNotFound):
		return err
	}
	return t.set(key, src)
}

// update overwrites the record at key, which must exist.
func (t *ledgerTx) update(key []byte, src any) error {
	if _, err := t.txn.Get(key); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.ErrNotFound
		}
		return err
	}
	return t.set(key, src)
}

func (t *ledgerTx) Campaign(addr domain.Address) (*domain.Campaign, error) {
	var c domain.Campaign
	if err := t.get(recordKey(prefixCampaign, addr), &c); err != nil {
		return nil, fmt.Errorf("campaign %s: %w", addr, err)
	}
	return &c, nil
}

func (t *ledgerTx) CreateCampaign(c *domain.Campaign) error {
	if err := t.create(recordKey(prefixCampaign, c.Address), c); err != nil {
		return fmt.Errorf("campaign %q: %w", c.Name, err)
	}
	return nil
}

func (t *ledgerTx) UpdateCampaign(c *domain.Campaign) error {
	return t.update(recordKey(prefixCampaign, c.Address), c)
}

func (t *ledgerTx) AffiliateLink(addr domain.Address) (*domain.AffiliateLink, error) {
	var l domain.AffiliateLink
	if err := t.get(recordKey(prefixAffiliateLink, addr), &l); err != nil {
		return nil, fmt.Errorf("affiliate link %s: %w", addr, err)
	}
	return &l, nil
}

func (t *ledgerTx) CreateAffiliateLink(l *domain.AffiliateLink) error {
	if err := t.create(recordKey(prefixAffiliateLink, l.Address), l); err != nil {
		return fmt.Errorf("affiliate link %s: %w", l.Address, err)
	}
	return nil
}

func (t *ledgerTx) UpdateAffiliateLink(l *domain.AffiliateLink) error {
	return t.update(recordKey(prefixAffiliateLink, l.Address), l)
}

func (t *ledgerTx) Vault(addr domain.Address) (*domain.Vault, error) {
	var v domain.Vault
	if err := t.get(recordKey(prefixVault, addr), &v); err != nil {
		return nil, fmt.Errorf("vault %s: %w", addr, err)
	}
	return &v, nil
}

func (t *ledgerTx) CreateVault(v *domain.Vault) error {
	if err := t.create(recordKey(prefixVault, v.Address), v); err != nil {
		return fmt.Errorf("vault %s: %w", v.Address, err)
	}
	return nil
}

func (t *ledgerTx) UpdateVault(v *domain.Vault) error {
	return t.update(recordKey(prefixVault, v.Address), v)
}

func (t *ledgerTx) Holding(addr domain.Address) (*domain.Holding, error) {
	var h domain.Holding
	if err := t.get(recordKey(prefixHolding, addr), &h); err != nil {
		return nil, fmt.Errorf("holding %s: %w", addr, err)
	}
	return &h, nil
}

func (t *ledgerTx) PutHolding(h *domain.Holding) error {
	return t.set(recordKey(prefixHolding, h.Address), h)
}

func (t *ledgerTx) Account(addr domain.Address) (*domain.Account, error) {
	var a domain.Account
	if err := t.get(recordKey(prefixAccount, addr), &a); err != nil {
		return nil, fmt.Errorf("account %s: %w", addr, err)
	}
	return &a, nil
}

func (t *ledgerTx) PutAccount(a *domain.Account) error {
	return t.set(recordKey(prefixAccount, a.Address), a)
}

// AppendEvent stores e under the campaign's next sequence number. The
// counter lives in its own key inside the same transaction.
func (t *ledgerTx) AppendEvent(e *domain.Event) error {
	if !t.readWrite {
		return errReadOnly
	}
	seqKey := recordKey(prefixEventSeq, e.Campaign)
	var seq uint64
	item, err := t.txn.Get(seqKey)
	switch {
	case err == nil:
		val, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		if len(val) != 8 {
			return fmt.Errorf("%w: event sequence of %s is %d bytes", domain.ErrInvariantViolation, e.Campaign, len(val))
		}
		seq = binary.BigEndian.Uint64(val)
	case !errors.Is(err, badger.ErrKeyNotFound):
		return err
	}
	seq++
	if err = t.txn.Set(seqKey, binary.BigEndian.AppendUint64(nil, seq)); err != nil {
		return err
	}
	return t.set(eventKey(e.Campaign, seq), e)
}

func (t *ledgerTx) Events(campaign domain.Address) ([]domain.Event, error) {
	prefix := recordKey(prefixEvent, campaign)
	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	it := t.txn.NewIterator(opts)
	defer it.Close()

	var events []domain.Event
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		val, err := it.Item().ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		var e domain.Event
		if err = decMode.Unmarshal(val, &e); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, e)
	}
	return events, nil
}
