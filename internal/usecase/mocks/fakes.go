package mocks

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"strconv"
	"sync"

	"github.com/iho/fraudmini/internal/domain"
)

// ErrObjectNotFound is returned by FakeObjectStore for unknown keys.
var ErrObjectNotFound = errors.New("object not found")

// FakeObjectStore is an in-memory ObjectStore keyed by bucket and key.
type FakeObjectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string

	PutFunc    func(ctx context.Context, bucket, key string, body []byte, contentType string) error
	CopyFunc   func(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error
	DeleteFunc func(ctx context.Context, bucket, key string) error
}

func NewFakeObjectStore() *FakeObjectStore {
	return &FakeObjectStore{
		objects: make(map[string][]byte),
		types:   make(map[string]string),
	}
}

func objectKey(bucket, key string) string {
	return bucket + "/" + key
}

// Seed stores an object without going through Put.
func (s *FakeObjectStore) Seed(bucket, key string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey(bucket, key)] = body
}

// Object returns a stored object and whether it exists.
func (s *FakeObjectStore) Object(bucket, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.objects[objectKey(bucket, key)]
	return body, ok
}

// ContentType returns the content type an object was put with.
func (s *FakeObjectStore) ContentType(bucket, key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.types[objectKey(bucket, key)]
}

// Keys lists every stored bucket/key pair, sorted.
func (s *FakeObjectStore) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *FakeObjectStore) Get(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.objects[objectKey(bucket, key)]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (s *FakeObjectStore) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	if s.PutFunc != nil {
		if err := s.PutFunc(ctx, bucket, key, body, contentType); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[objectKey(bucket, key)] = append([]byte(nil), body...)
	s.types[objectKey(bucket, key)] = contentType
	return nil
}

func (s *FakeObjectStore) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error {
	if s.CopyFunc != nil {
		if err := s.CopyFunc(ctx, srcBucket, srcKey, dstBucket, dstKey); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	body, ok := s.objects[objectKey(srcBucket, srcKey)]
	if !ok {
		return ErrObjectNotFound
	}
	s.objects[objectKey(dstBucket, dstKey)] = body
	return nil
}

func (s *FakeObjectStore) Delete(ctx context.Context, bucket, key string) error {
	if s.DeleteFunc != nil {
		if err := s.DeleteFunc(ctx, bucket, key); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, objectKey(bucket, key))
	return nil
}

// FakeQueue records sent messages.
type FakeQueue struct {
	mu       sync.Mutex
	messages [][]byte

	SendFunc func(ctx context.Context, payload []byte) error
}

func NewFakeQueue() *FakeQueue {
	return &FakeQueue{}
}

func (q *FakeQueue) Send(ctx context.Context, payload []byte) error {
	if q.SendFunc != nil {
		if err := q.SendFunc(ctx, payload); err != nil {
			return err
		}
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.messages = append(q.messages, append([]byte(nil), payload...))
	return nil
}

// Messages returns the sent payloads in order.
func (q *FakeQueue) Messages() [][]byte {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([][]byte(nil), q.messages...)
}

// FakePublisher records published alerts.
type FakePublisher struct {
	mu       sync.Mutex
	subjects []string
	messages [][]byte

	PublishFunc func(ctx context.Context, subject string, message []byte) error
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (p *FakePublisher) Publish(ctx context.Context, subject string, message []byte) error {
	if p.PublishFunc != nil {
		if err := p.PublishFunc(ctx, subject, message); err != nil {
			return err
		}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	p.messages = append(p.messages, message)
	return nil
}

// Published returns the published subjects and messages in order.
func (p *FakePublisher) Published() ([]string, [][]byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.subjects...), append([][]byte(nil), p.messages...)
}

// FakeTransactionRepository stores transactions in memory.
type FakeTransactionRepository struct {
	mu           sync.RWMutex
	transactions map[string]*domain.Transaction
	puts         int

	PutFunc func(ctx context.Context, txn *domain.Transaction) error
}

func NewFakeTransactionRepository() *FakeTransactionRepository {
	return &FakeTransactionRepository{
		transactions: make(map[string]*domain.Transaction),
	}
}

func (r *FakeTransactionRepository) Put(ctx context.Context, txn *domain.Transaction) error {
	if r.PutFunc != nil {
		return r.PutFunc(ctx, txn)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *txn
	r.transactions[txn.TransactionID] = &cp
	r.puts++
	return nil
}

// Puts returns how many times Put stored a transaction.
func (r *FakeTransactionRepository) Puts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.puts
}

func (r *FakeTransactionRepository) RecentByUser(ctx context.Context, userID string, limit int) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domain.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ts.After(out[j].Ts) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Recent implements usecase.HistoryLookup.
func (r *FakeTransactionRepository) Recent(ctx context.Context, userID string, limit int) (domain.History, error) {
	txns, err := r.RecentByUser(ctx, userID, limit)
	return domain.History(txns), err
}

// FakeDecisionRepository stores decisions in memory.
type FakeDecisionRepository struct {
	mu        sync.RWMutex
	decisions map[string]*domain.Decision
	puts      int

	GetFunc func(ctx context.Context, transactionID string) (*domain.Decision, error)
	PutFunc func(ctx context.Context, decision *domain.Decision) error
}

func NewFakeDecisionRepository() *FakeDecisionRepository {
	return &FakeDecisionRepository{
		decisions: make(map[string]*domain.Decision),
	}
}

func (r *FakeDecisionRepository) Get(ctx context.Context, transactionID string) (*domain.Decision, error) {
	if r.GetFunc != nil {
		return r.GetFunc(ctx, transactionID)
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if d, ok := r.decisions[transactionID]; ok {
		return d, nil
	}
	return nil, domain.ErrDecisionNotFound
}

func (r *FakeDecisionRepository) Put(ctx context.Context, decision *domain.Decision) error {
	if r.PutFunc != nil {
		return r.PutFunc(ctx, decision)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.decisions[decision.TransactionID] = decision
	r.puts++
	return nil
}

// Puts returns how many times Put stored a decision.
func (r *FakeDecisionRepository) Puts() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.puts
}

// StaticRules is a RuleLoader that always returns the same catalog.
type StaticRules struct {
	Rules domain.RuleSet
	Err   error
}

func (s StaticRules) Load(ctx context.Context) (domain.RuleSet, error) {
	return s.Rules, s.Err
}

// SequenceIDGenerator returns prefix-1, prefix-2, ...
type SequenceIDGenerator struct {
	mu     sync.Mutex
	Prefix string
	n      int
}

func (g *SequenceIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return g.Prefix + "-" + strconv.Itoa(g.n)
}
