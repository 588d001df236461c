package models

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DefaultDbName     = "eventbook"
	BookingsColName   = "bookings"
	sampleBookingFile = "data/bookings.json"
)

var ErrBookingNotFound = errors.New("booking not found")

// BookingsRepo is the append-only store of submitted bookings.
type BookingsRepo interface {
	ListBookings(ctx context.Context) ([]*Booking, error)
	AppendBooking(ctx context.Context, booking *Booking) error
}

// LoadSampleBookings returns the historical bookings bundled with the binary.
func LoadSampleBookings() ([]*Booking, error) {
	var bookings []*Booking
	if err := readEmbedded(sampleBookingFile, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (mdb *MongodbRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	col, err := mdb.GetCollection(ctx, BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*Booking
	for cursor.Next(ctx) {
		var b Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, &b)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}

	return bookings, nil
}

func (mdb *MongodbRepo) AppendBooking(ctx context.Context, booking *Booking) error {
	if booking == nil {
		return fmt.Errorf("booking is nil")
	}
	col, err := mdb.GetCollection(ctx, BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %w", err)
	}

	if _, err := col.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to insert booking into database: %w", err)
	}
	return nil
}

// InMemoryBookingsRepo keeps bookings for the life of the process.
type InMemoryBookingsRepo struct {
	mu       sync.RWMutex
	bookings []*Booking
}

func NewInMemoryBookingsRepo() *InMemoryBookingsRepo {
	return &InMemoryBookingsRepo{}
}

func (r *InMemoryBookingsRepo) ListBookings(ctx context.Context) ([]*Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]*Booking(nil), r.bookings...), nil
}

func (r *InMemoryBookingsRepo) AppendBooking(ctx context.Context, booking *Booking) error {
	if booking == nil {
		return fmt.Errorf("booking is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = append(r.bookings, booking)
	return nil
}
