package mongeasy_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/mongeasy"
)

func Example() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m, err := mongeasy.New(ctx, mongeasy.DefaultConfig("mongodb://localhost:27017/app", "users"))
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close(context.Background())

	hash, err := m.Helpers.Hash("s3cret")
	if err != nil {
		log.Fatal(err)
	}

	if _, err := m.Insert.InsertOne(ctx, "", bson.M{"email": "a@example.com", "password": hash}); err != nil {
		log.Fatal(err)
	}

	user, err := m.Search.SearchByValue(ctx, "", "email", "a@example.com")
	if err != nil {
		log.Fatal(err)
	}
	if user == nil || !m.Helpers.CompareHash(user["password"].(string), "s3cret") {
		log.Fatal("invalid credentials")
	}

	token, err := m.Helpers.SignToken("signing-key", map[string]any{"sub": user["_id"]}, true, "7d")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(m.Helpers.VerifyToken(token, "signing-key") != nil)
}
