package repository

import (
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection          = "users"
	productsCollection       = "products"
	advertisementsCollection = "advertisements"
	ordersCollection         = "orders"
	watchlistCollection      = "watchlist"

	// userEmails/{email} reserves an address for one uid.
	userEmailsCollection = "userEmails"
	// meta/users exists once the first user has been created.
	metaCollection   = "meta"
	usersSentinelDoc = "users"

	// Firestore caps GetAll batches.
	getAllBatchSize = 30
)

func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func IsAlreadyExists(err error) bool {
	return status.Code(err) == codes.AlreadyExists
}

// applyFilter adds one equality clause per filter field in a stable order.
func applyFilter(query firestore.Query, filter map[string]interface{}) firestore.Query {
	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		query = query.Where(k, "==", filter[k])
	}
	return query
}

// collect decodes every document of the iterator into a fresh T.
func collect[T any](iter *firestore.DocumentIterator) ([]*T, error) {
	defer iter.Stop()

	var out []*T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var item T
		if err := doc.DataTo(&item); err != nil {
			return nil, err
		}
		out = append(out, &item)
	}
	return out, nil
}
