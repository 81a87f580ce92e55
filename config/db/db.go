package db

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client   *mongo.Client
	database *mongo.Database
)

/*
* Read MONGO_URI and DB_NAME from the environment
* Connect and ping with a 10s deadline
* Keep the client and database handles package wide
 */
func Connect(ctx context.Context) error {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://127.0.0.1:27017"
	}
	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "mediflow"
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Println("Error while connecting to mongo:", err)
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Println("Error while pinging mongo:", err)
		return err
	}
	Client = client
	database = client.Database(name)
	log.Println("MongoDB connection established")
	return nil
}

func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

func OpenCollections(name string) *mongo.Collection {
	return database.Collection(name)
}

func FindOne(ctx context.Context, collection *mongo.Collection, filter interface{}, result interface{}) error {
	return collection.FindOne(ctx, filter).Decode(result)
}

/*
* Run the find with the given filter and options
* Decode every document into results via cursor.All
 */
func FindAll(ctx context.Context, collection *mongo.Collection, filter interface{}, opts *options.FindOptions, results interface{}) error {
	if filter == nil {
		filter = map[string]interface{}{}
	}
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = collection.Find(ctx, filter, opts)
	} else {
		cursor, err = collection.Find(ctx, filter)
	}
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

func CreateOne(ctx context.Context, collection *mongo.Collection, document interface{}) (*mongo.InsertOneResult, error) {
	return collection.InsertOne(ctx, document)
}

func UpdateOne(ctx context.Context, collection *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return collection.UpdateOne(ctx, filter, update)
}

func UpdateMany(ctx context.Context, collection *mongo.Collection, filter interface{}, update interface{}) (*mongo.UpdateResult, error) {
	return collection.UpdateMany(ctx, filter, update)
}

// FindOneAndUpdate applies the update and decodes the post-update document.
func FindOneAndUpdate(ctx context.Context, collection *mongo.Collection, filter interface{}, update interface{}, result interface{}) error {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	return collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(result)
}

func DeleteOne(ctx context.Context, collection *mongo.Collection, filter interface{}) (*mongo.DeleteResult, error) {
	return collection.DeleteOne(ctx, filter)
}

func CountDocuments(ctx context.Context, collection *mongo.Collection, filter interface{}) (int64, error) {
	if filter == nil {
		filter = map[string]interface{}{}
	}
	return collection.CountDocuments(ctx, filter)
}

func Aggregate(ctx context.Context, collection *mongo.Collection, pipeline interface{}, results interface{}) error {
	cursor, err := collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)
	return cursor.All(ctx, results)
}

/*
* Start a session and run fn inside a transaction
* The driver retries transient transaction errors
 */
func WithTransaction(ctx context.Context, fn func(sc mongo.SessionContext) error) error {
	session, err := Client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
