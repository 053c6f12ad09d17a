package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/anishanishy81-byte/poverse-sub003/model"
)

type CustomerRepository struct {
	customers    *mongo.Collection
	interactions *mongo.Collection
	notes        *mongo.Collection
	purchases    *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{
		customers:    db.Collection("customers"),
		interactions: db.Collection("interactions"),
		notes:        db.Collection("customer_notes"),
		purchases:    db.Collection("purchases"),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *model.Customer) error {
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	res, err := r.customers.InsertOne(ctx, c)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	c.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *CustomerRepository) GetByID(ctx context.Context, id bson.ObjectID) (*model.Customer, error) {
	var c model.Customer
	err := r.customers.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) List(ctx context.Context, companyID bson.ObjectID, agentID *bson.ObjectID, status string, limit int64) ([]*model.Customer, error) {
	filter := bson.M{"company_id": companyID}
	if agentID != nil {
		filter["agent_id"] = *agentID
	}
	if status != "" {
		filter["status"] = status
	}
	cursor, err := r.customers.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find customers: %w", err)
	}
	var out []*model.Customer
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return out, nil
}

func (r *CustomerRepository) Update(ctx context.Context, id bson.ObjectID, set bson.M) (*model.Customer, error) {
	set["updated_at"] = time.Now()
	res := r.customers.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		updateReturnAfter())
	var c model.Customer
	if err := res.Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return &c, nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.customers.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete customer: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// ApplyCounters applies an $inc/$set pair maintained by the customer
// service when child records change.
func (r *CustomerRepository) ApplyCounters(ctx context.Context, id bson.ObjectID, inc bson.M, set bson.M) error {
	update := bson.M{}
	if len(inc) > 0 {
		update["$inc"] = inc
	}
	set["updated_at"] = time.Now()
	update["$set"] = set
	if _, err := r.customers.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("update customer counters: %w", err)
	}
	return nil
}

// --- interactions ---

func (r *CustomerRepository) AddInteraction(ctx context.Context, in *model.Interaction) error {
	in.CreatedAt = time.Now()
	res, err := r.interactions.InsertOne(ctx, in)
	if err != nil {
		return fmt.Errorf("insert interaction: %w", err)
	}
	in.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *CustomerRepository) ListInteractions(ctx context.Context, customerID bson.ObjectID, limit int64) ([]*model.Interaction, error) {
	cursor, err := r.interactions.Find(ctx, bson.M{"customer_id": customerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find interactions: %w", err)
	}
	var out []*model.Interaction
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode interactions: %w", err)
	}
	return out, nil
}

// CountInteractionsByAgent counts an agent's interactions in [from, to).
func (r *CustomerRepository) CountInteractionsByAgent(ctx context.Context, agentID bson.ObjectID, from, to time.Time) (int64, error) {
	n, err := r.interactions.CountDocuments(ctx, bson.M{
		"agent_id":   agentID,
		"created_at": bson.M{"$gte": from, "$lt": to},
	})
	if err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return n, nil
}

// --- notes ---

func (r *CustomerRepository) AddNote(ctx context.Context, n *model.CustomerNote) error {
	n.CreatedAt = time.Now()
	res, err := r.notes.InsertOne(ctx, n)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}
	n.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *CustomerRepository) ListNotes(ctx context.Context, customerID bson.ObjectID, limit int64) ([]*model.CustomerNote, error) {
	cursor, err := r.notes.Find(ctx, bson.M{"customer_id": customerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find notes: %w", err)
	}
	var out []*model.CustomerNote
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return out, nil
}

// --- purchases ---

func (r *CustomerRepository) AddPurchase(ctx context.Context, p *model.Purchase) error {
	p.CreatedAt = time.Now()
	res, err := r.purchases.InsertOne(ctx, p)
	if err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	p.ID = res.InsertedID.(bson.ObjectID)
	return nil
}

func (r *CustomerRepository) GetPurchase(ctx context.Context, id bson.ObjectID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.purchases.FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find purchase: %w", err)
	}
	return &p, nil
}

func (r *CustomerRepository) ListPurchases(ctx context.Context, customerID bson.ObjectID, limit int64) ([]*model.Purchase, error) {
	cursor, err := r.purchases.Find(ctx, bson.M{"customer_id": customerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("find purchases: %w", err)
	}
	var out []*model.Purchase
	if err := cursor.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode purchases: %w", err)
	}
	return out, nil
}

func (r *CustomerRepository) DeletePurchase(ctx context.Context, id bson.ObjectID) (bool, error) {
	res, err := r.purchases.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, fmt.Errorf("delete purchase: %w", err)
	}
	return res.DeletedCount > 0, nil
}
