// Package mongeasy is a small façade over the MongoDB Go driver, bcrypt and
// HS256 JSON Web Tokens, meant for services that want one-line database
// calls without writing repository boilerplate.
//
// A Mongeasy value owns one connection and a default collection. Its
// operations are grouped into four fields:
//
//   - Helpers: ConvertID, Hash, CompareHash, SignToken, VerifyToken, ParseToken
//   - Insert: InsertOne, UpdateFieldValue, UpdateMultipleFields, AddToField
//   - Delete: DeleteByID, DeleteByField, DeleteCollection, DeleteFieldByValue
//   - Search: SearchByDocumentID, SearchByValue, SearchByFieldValue,
//     SearchDocumentsByField, SearchDocumentByField
//
// Each data operation takes the target collection as its first argument
// after the context. An empty string selects the default collection.
//
// # Usage
//
//	db, err := mongeasy.New(ctx, mongeasy.DefaultConfig("mongodb://localhost:27017/app", "users"))
//	if err != nil {
//		return err
//	}
//	defer db.Close(context.Background())
//
//	hash, err := db.Helpers.Hash(password)
//	if err != nil {
//		return err
//	}
//	if _, err := db.Insert.InsertOne(ctx, "", bson.M{"email": email, "password": hash}); err != nil {
//		return err
//	}
//
//	user, err := db.Search.SearchByValue(ctx, "", "email", email)
//	if err != nil {
//		return err
//	}
//	if user == nil {
//		// not found
//	}
//
// # Connection
//
// New returns immediately and connects in the background. Every operation
// waits for that connection; if it failed, the operation returns
// ErrConnection joined with the cause. Wait blocks until the outcome is
// known, Ping checks the server, and Close disconnects. NewWithDatabase
// accepts an already open *mongo.Database instead.
//
// # Configuration
//
// Config carries env tags (MONGODB_URL, MONGEASY_COLLECTION,
// MONGEASY_BCRYPT_COST, ...) and can be read with LoadConfig.
//
// # Error Handling
//
// Failures are joined with a package sentinel so callers can match either
// the kind or the driver error:
//
//	_, err := db.Insert.AddToField(ctx, "", bson.M{"_id": id}, bson.M{"tags": "go"})
//	if errors.Is(err, mongeasy.ErrTypeMismatch) { ... }
//	if mongo.IsDuplicateKeyError(err) { ... }
//
// VerifyToken is the exception: it reports any failure as a nil result.
// ParseToken returns the underlying reason instead.
package mongeasy
