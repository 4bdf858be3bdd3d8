// Package memory is a process-local document store used for development and
// tests. It is selected with STORE_DRIVER=memory and is not durable.
package memory

import (
	"encoding/json"
	"reflect"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"localmarket/internal/domain/repository"
)

const (
	usersCollection          = "users"
	productsCollection       = "products"
	advertisementsCollection = "advertisements"
	ordersCollection         = "orders"
	watchlistCollection      = "watchlist"
)

type document struct {
	seq  uint64
	data interface{}
}

// Store keeps one collection per resource behind a single lock, so a
// read-modify-write on any of them is isolated from every other write.
type Store struct {
	mu          sync.Mutex
	seq         uint64
	collections map[string]map[string]*document
}

func NewStore() *Store {
	return &Store{collections: make(map[string]map[string]*document)}
}

func (s *Store) Users() repository.UserRepository {
	return &userRepository{store: s}
}

func (s *Store) Products() repository.ProductRepository {
	return &productRepository{store: s}
}

func (s *Store) Advertisements() repository.AdvertisementRepository {
	return &advertisementRepository{store: s}
}

func (s *Store) Orders() repository.OrderRepository {
	return &orderRepository{store: s}
}

func (s *Store) Watchlist() repository.WatchlistRepository {
	return &watchlistRepository{store: s}
}

// Callers of the helpers below must hold s.mu.

func (s *Store) collection(name string) map[string]*document {
	c, ok := s.collections[name]
	if !ok {
		c = make(map[string]*document)
		s.collections[name] = c
	}
	return c
}

func (s *Store) put(name, id string, v interface{}) {
	c := s.collection(name)
	if doc, ok := c[id]; ok {
		doc.data = clone(v)
		return
	}
	s.seq++
	c[id] = &document{seq: s.seq, data: clone(v)}
}

func (s *Store) get(name, id string) (interface{}, bool) {
	doc, ok := s.collection(name)[id]
	if !ok {
		return nil, false
	}
	return clone(doc.data), true
}

func (s *Store) remove(name, id string) bool {
	c := s.collection(name)
	if _, ok := c[id]; !ok {
		return false
	}
	delete(c, id)
	return true
}

// query returns copies of the documents matching filter, ordered by
// createdAt and then insertion order.
func (s *Store) query(name string, filter map[string]interface{}, createdAt func(interface{}) time.Time, newestFirst bool) []interface{} {
	want := toFields(filter)

	var docs []*document
	for _, doc := range s.collection(name) {
		if matches(toFields(doc.data), want) {
			docs = append(docs, doc)
		}
	}

	sort.Slice(docs, func(i, j int) bool {
		ti, tj := createdAt(docs[i].data), createdAt(docs[j].data)
		if !ti.Equal(tj) {
			if newestFirst {
				return ti.After(tj)
			}
			return ti.Before(tj)
		}
		if newestFirst {
			return docs[i].seq > docs[j].seq
		}
		return docs[i].seq < docs[j].seq
	})

	out := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		out = append(out, clone(doc.data))
	}
	return out
}

func newID() string {
	return uuid.New().String()
}

// clone deep-copies an entity pointer through its JSON form so that callers
// never alias stored state.
func clone(v interface{}) interface{} {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	out := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal(raw, out.Interface()); err != nil {
		return v
	}
	return out.Interface()
}

// toFields flattens a value into its JSON field map. Filter keys use the
// same camelCase names as the stored documents.
func toFields(v interface{}) map[string]interface{} {
	fields := map[string]interface{}{}
	if v == nil {
		return fields
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fields
	}
	_ = json.Unmarshal(raw, &fields)
	return fields
}

func matches(doc, want map[string]interface{}) bool {
	for k, v := range want {
		if !reflect.DeepEqual(doc[k], v) {
			return false
		}
	}
	return true
}
