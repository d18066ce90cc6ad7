package orders

import (
	"context"
	"errors"
	"time"

	"dorata/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPersistence stores orders in a MongoDB collection. Transitions go
// through a conditional FindOneAndUpdate so the status check and the write
// are one atomic step.
type MongoPersistence struct {
	coll *mongo.Collection
}

func NewMongoPersistence(coll *mongo.Collection) *MongoPersistence {
	return &MongoPersistence{coll: coll}
}

// orderRow is the wire shape of the orders collection.
type orderRow struct {
	OrderID       string             `bson:"orderId"`
	CustomerName  string             `bson:"customerName"`
	CustomerPhone string             `bson:"customerPhone"`
	PickupTime    string             `bson:"pickupTime"`
	Items         []models.OrderItem `bson:"items"`
	Total         float64            `bson:"total"`
	CreatedAt     time.Time          `bson:"createdAt"`
	Status        string             `bson:"status"`
}

func (m *MongoPersistence) Insert(ctx context.Context, order models.Order) error {
	row := orderRow{
		OrderID:       order.OrderID,
		CustomerName:  order.CustomerName,
		CustomerPhone: order.CustomerPhone,
		PickupTime:    order.PickupTime,
		Items:         order.Items,
		Total:         order.Total,
		CreatedAt:     order.CreatedAt,
		Status:        string(order.Status),
	}
	if _, err := m.coll.InsertOne(ctx, row); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateOrder
		}
		return err
	}
	return nil
}

func (m *MongoPersistence) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := m.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []orderRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	out := make([]models.Order, 0, len(rows))
	for _, row := range rows {
		order, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, order)
	}
	return out, nil
}

func (m *MongoPersistence) UpdateStatus(ctx context.Context, orderID string, from, to models.OrderStatus) (models.Order, error) {
	filter := bson.M{"orderId": orderID, "status": string(from)}
	update := bson.M{"$set": bson.M{"status": string(to)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var row orderRow
	err := m.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&row)
	if err == nil {
		return decodeRow(row)
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, err
	}

	// No row matched: either the order does not exist, or it was not in the
	// expected prior status.
	count, cerr := m.coll.CountDocuments(ctx, bson.M{"orderId": orderID})
	if cerr != nil {
		return models.Order{}, cerr
	}
	if count == 0 {
		return models.Order{}, ErrOrderNotFound
	}
	return models.Order{}, ErrBadTransition
}

// decodeRow is the typed boundary between storage rows and domain orders.
// A malformed row is rejected with a RowError instead of leaking upward.
func decodeRow(row orderRow) (models.Order, error) {
	if row.OrderID == "" {
		return models.Order{}, &RowError{Field: "orderId", Reason: "is empty"}
	}
	status := models.OrderStatus(row.Status)
	if !status.Valid() {
		return models.Order{}, &RowError{Field: "status", Reason: "unknown value " + row.Status}
	}
	if row.CreatedAt.IsZero() {
		return models.Order{}, &RowError{Field: "createdAt", Reason: "is zero"}
	}
	return models.Order{
		OrderID:       row.OrderID,
		CustomerName:  row.CustomerName,
		CustomerPhone: row.CustomerPhone,
		PickupTime:    row.PickupTime,
		Items:         row.Items,
		Total:         row.Total,
		CreatedAt:     row.CreatedAt,
		Status:        status,
	}, nil
}
