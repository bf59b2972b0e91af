package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	store "github.com/spicehouse/restaurant-backend/internal/storage"
	"github.com/spicehouse/restaurant-backend/internal/types/catalog"
	"github.com/spicehouse/restaurant-backend/internal/types/order"
	"github.com/spicehouse/restaurant-backend/internal/types/payment"
	"github.com/spicehouse/restaurant-backend/internal/types/user"
)

type MongoStorage struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStorage(ctx context.Context, uri, dbName string) (*MongoStorage, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	s := &MongoStorage{client: client, db: client.Database(dbName)}

	if err := s.client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	if err := s.initIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *MongoStorage) initIndexes(ctx context.Context) error {
	idx := []struct {
		coll  string
		model mongo.IndexModel
	}{
		{"users", mongo.IndexModel{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		}},
		{"payment_orders", mongo.IndexModel{
			Keys: bson.D{{Key: "razorpay_order_id", Value: 1}},
		}},
		{"payment_orders", mongo.IndexModel{
			Keys: bson.D{{Key: "razorpay_payment_id", Value: 1}},
		}},
		{"orders", mongo.IndexModel{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		}},
	}
	for _, i := range idx {
		if _, err := s.db.Collection(i.coll).Indexes().CreateOne(ctx, i.model); err != nil {
			return fmt.Errorf("init indexes: %w", err)
		}
	}
	return nil
}

func (s *MongoStorage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStorage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, store.ErrNotFound
	}
	return oid, nil
}

// ----- orders -----

func (s *MongoStorage) CreateOrder(ctx context.Context, o *order.Order) error {
	res, err := s.db.Collection("orders").InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) FindOrderByID(ctx context.Context, id string) (*order.Order, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var o order.Order
	err = s.db.Collection("orders").FindOne(ctx, bson.M{"_id": oid}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *MongoStorage) ListOrders(ctx context.Context) ([]order.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.db.Collection("orders").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []order.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStorage) UpdateOrderStatus(ctx context.Context, id string, status order.OrderStatus, updatedAt time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection("orders").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"order_status": status, "updated_at": updatedAt}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *MongoStorage) SetOrderPayment(ctx context.Context, id string, status order.PaymentStatus, paymentID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.db.Collection("orders").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"payment_status": status, "payment_id": paymentID}},
	)
	return err
}

// ----- payment orders -----

func (s *MongoStorage) CreatePaymentOrder(ctx context.Context, po *payment.PaymentOrder) error {
	res, err := s.db.Collection("payment_orders").InsertOne(ctx, po)
	if err != nil {
		return err
	}
	po.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) FindPaymentOrderByRemoteID(ctx context.Context, remoteOrderID string) (*payment.PaymentOrder, error) {
	var po payment.PaymentOrder
	err := s.db.Collection("payment_orders").
		FindOne(ctx, bson.M{"razorpay_order_id": remoteOrderID}).Decode(&po)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (s *MongoStorage) CompletePaymentOrder(ctx context.Context, remoteOrderID, paymentID string) error {
	res, err := s.db.Collection("payment_orders").UpdateOne(ctx,
		bson.M{"razorpay_order_id": remoteOrderID},
		bson.M{"$set": bson.M{"status": payment.StatusCompleted, "razorpay_payment_id": paymentID}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *MongoStorage) AttachWebhook(ctx context.Context, paymentID, event string, entity []byte) error {
	_, err := s.db.Collection("payment_orders").UpdateOne(ctx,
		bson.M{"razorpay_payment_id": paymentID},
		bson.M{"$set": bson.M{"webhook_event": event, "webhook_data": string(entity)}},
	)
	return err
}

func (s *MongoStorage) ListCompletedPaymentOrders(ctx context.Context) ([]payment.PaymentOrder, error) {
	cur, err := s.db.Collection("payment_orders").Find(ctx, bson.M{"status": payment.StatusCompleted})
	if err != nil {
		return nil, err
	}
	var out []payment.PaymentOrder
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ----- users -----

func (s *MongoStorage) CreateUser(ctx context.Context, u *user.User) error {
	res, err := s.db.Collection("users").InsertOne(ctx, u)
	if err != nil {
		return err
	}
	u.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := s.db.Collection("users").FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// ----- restaurant info -----

func (s *MongoStorage) GetRestaurantInfo(ctx context.Context) (*catalog.RestaurantInfo, error) {
	var info catalog.RestaurantInfo
	err := s.db.Collection("restaurant_info").FindOne(ctx, bson.M{}).Decode(&info)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *MongoStorage) UpsertRestaurantInfo(ctx context.Context, info *catalog.RestaurantInfo) error {
	_, err := s.db.Collection("restaurant_info").UpdateOne(ctx,
		bson.M{},
		bson.M{"$set": info},
		options.Update().SetUpsert(true),
	)
	return err
}

// ----- menu -----

func (s *MongoStorage) ListMenuCategories(ctx context.Context) ([]catalog.MenuCategory, error) {
	cur, err := s.db.Collection("menu_categories").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []catalog.MenuCategory
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStorage) CreateMenuCategory(ctx context.Context, c *catalog.MenuCategory) error {
	res, err := s.db.Collection("menu_categories").InsertOne(ctx, c)
	if err != nil {
		return err
	}
	c.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) AddMenuItem(ctx context.Context, categoryID string, item *catalog.MenuItem) error {
	oid, err := objectID(categoryID)
	if err != nil {
		return err
	}
	res, err := s.db.Collection("menu_categories").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$push": bson.M{"items": item}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *MongoStorage) UpdateMenuItem(ctx context.Context, itemID string, item *catalog.MenuItem) error {
	item.ID = itemID
	res, err := s.db.Collection("menu_categories").UpdateOne(ctx,
		bson.M{"items.id": itemID},
		bson.M{"$set": bson.M{"items.$": item}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *MongoStorage) DeleteMenuItem(ctx context.Context, itemID string) error {
	res, err := s.db.Collection("menu_categories").UpdateOne(ctx,
		bson.M{"items.id": itemID},
		bson.M{"$pull": bson.M{"items": bson.M{"id": itemID}}},
	)
	if err != nil {
		return err
	}
	if res.ModifiedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ----- bookings -----

func (s *MongoStorage) CreateBooking(ctx context.Context, b *catalog.Booking) error {
	res, err := s.db.Collection("bookings").InsertOne(ctx, b)
	if err != nil {
		return err
	}
	b.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) ListBookings(ctx context.Context) ([]catalog.Booking, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := s.db.Collection("bookings").Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var out []catalog.Booking
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStorage) UpdateBookingStatus(ctx context.Context, id string, status catalog.BookingStatus, updatedAt time.Time) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection("bookings").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": status, "updated_at": updatedAt}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ----- testimonials -----

func (s *MongoStorage) CreateTestimonial(ctx context.Context, t *catalog.Testimonial) error {
	res, err := s.db.Collection("testimonials").InsertOne(ctx, t)
	if err != nil {
		return err
	}
	t.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) ListTestimonials(ctx context.Context, approved bool) ([]catalog.Testimonial, error) {
	cur, err := s.db.Collection("testimonials").Find(ctx, bson.M{"approved": approved})
	if err != nil {
		return nil, err
	}
	var out []catalog.Testimonial
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStorage) ApproveTestimonial(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection("testimonials").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"approved": true}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ----- gallery -----

func (s *MongoStorage) ListGallery(ctx context.Context) ([]catalog.GalleryImage, error) {
	cur, err := s.db.Collection("gallery").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var out []catalog.GalleryImage
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStorage) AddGalleryImage(ctx context.Context, img *catalog.GalleryImage) error {
	res, err := s.db.Collection("gallery").InsertOne(ctx, img)
	if err != nil {
		return err
	}
	img.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) DeleteGalleryImage(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection("gallery").DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// ----- special offers -----

func (s *MongoStorage) ListActiveOffers(ctx context.Context) ([]catalog.SpecialOffer, error) {
	cur, err := s.db.Collection("special_offers").Find(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}
	var out []catalog.SpecialOffer
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *MongoStorage) CreateOffer(ctx context.Context, o *catalog.SpecialOffer) error {
	res, err := s.db.Collection("special_offers").InsertOne(ctx, o)
	if err != nil {
		return err
	}
	o.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (s *MongoStorage) UpdateOffer(ctx context.Context, id string, o *catalog.SpecialOffer) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}
	res, err := s.db.Collection("special_offers").UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"title":       o.Title,
			"description": o.Description,
			"valid_until": o.ValidUntil,
			"active":      o.Active,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
