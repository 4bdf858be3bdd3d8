package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"localmarket/internal/domain/entity"
	"localmarket/internal/domain/repository"
	"localmarket/pkg/errors"
)

type firestoreProductRepository struct {
	client *firestore.Client
}

func NewFirestoreProductRepository(client *firestore.Client) repository.ProductRepository {
	return &firestoreProductRepository{
		client: client,
	}
}

func (r *firestoreProductRepository) Create(ctx context.Context, product *entity.Product) error {
	if product.ID == "" {
		product.ID = r.client.Collection(productsCollection).NewDoc().ID
	}

	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	_, err := r.client.Collection(productsCollection).Doc(product.ID).Set(ctx, product)
	if err != nil {
		return errors.Internal("Failed to create product", err)
	}
	return nil
}

func (r *firestoreProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	doc, err := r.client.Collection(productsCollection).Doc(id).Get(ctx)
	if err != nil {
		if IsNotFound(err) {
			return nil, errors.NotFound("Product", err)
		}
		return nil, errors.Internal("Failed to get product", err)
	}

	var product entity.Product
	if err := doc.DataTo(&product); err != nil {
		return nil, errors.Internal("Failed to parse product data", err)
	}
	return &product, nil
}

func (r *firestoreProductRepository) GetMany(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	products := make(map[string]*entity.Product, len(ids))

	for i := 0; i < len(ids); i += getAllBatchSize {
		end := i + getAllBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		refs := make([]*firestore.DocumentRef, 0, end-i)
		for _, id := range ids[i:end] {
			refs = append(refs, r.client.Collection(productsCollection).Doc(id))
		}

		docs, err := r.client.GetAll(ctx, refs)
		if err != nil {
			return nil, errors.Internal("Failed to batch fetch products", err)
		}

		for _, doc := range docs {
			if doc == nil || !doc.Exists() {
				continue
			}
			var product entity.Product
			if err := doc.DataTo(&product); err != nil {
				continue
			}
			products[doc.Ref.ID] = &product
		}
	}

	return products, nil
}

func (r *firestoreProductRepository) List(ctx context.Context, filter map[string]interface{}) ([]*entity.Product, error) {
	query := applyFilter(r.client.Collection(productsCollection).Query, filter).
		OrderBy("createdAt", firestore.Desc)

	products, err := collect[entity.Product](query.Documents(ctx))
	if err != nil {
		return nil, errors.Internal("Failed to list products", err)
	}
	return products, nil
}

// Mutate runs fn inside a Firestore transaction so that concurrent review or
// product edits are serialized instead of overwriting each other.
func (r *firestoreProductRepository) Mutate(ctx context.Context, id string, fn repository.ProductMutation) (*entity.Product, error) {
	ref := r.client.Collection(productsCollection).Doc(id)

	var result entity.Product
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(ref)
		if err != nil {
			if IsNotFound(err) {
				return errors.NotFound("Product", err)
			}
			return errors.Internal("Failed to get product", err)
		}

		var product entity.Product
		if err := doc.DataTo(&product); err != nil {
			return errors.Internal("Failed to parse product data", err)
		}

		if err := fn(&product); err != nil {
			return err
		}

		product.ID = id
		product.UpdatedAt = time.Now()
		if err := tx.Set(ref, &product); err != nil {
			return errors.Internal("Failed to update product", err)
		}

		result = product
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "Failed to update product")
	}

	return &result, nil
}

func (r *firestoreProductRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection(productsCollection).Doc(id).Delete(ctx, firestore.Exists)
	if err != nil {
		if IsNotFound(err) {
			return errors.NotFound("Product", err)
		}
		return errors.Internal("Failed to delete product", err)
	}
	return nil
}
