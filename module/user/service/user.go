package service

import (
	"context"
	"time"

	usermodel "SocialChat/module/user/model"
	"SocialChat/service/storage"
	"SocialChat/tools/errs"
	"SocialChat/tools/ids"
	jwtlib "SocialChat/tools/security"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// RegisterParams holds signup input.
type RegisterParams struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	FaceURL   string
}

// Register creates a new account. Username is the login key and must be free.
func Register(ctx context.Context, db *mongo.Database, in RegisterParams) (*usermodel.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, errs.ErrArgs.WithDetail("username and password are required")
	}

	coll := db.Collection((&usermodel.User{}).GetTableName())

	n, err := coll.CountDocuments(ctx, bson.M{"username": in.Username})
	if err != nil {
		return nil, errs.WrapMsg(err, "count username", "username", in.Username)
	}
	if n > 0 {
		return nil, errs.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.WrapMsg(err, "bcrypt hash")
	}

	now := time.Now()
	u := &usermodel.User{
		UserID:       ids.GenerateString(),
		Username:     in.Username,
		PasswordHash: string(hash),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		FaceURL:      in.FaceURL,
		CreateTime:   now,
		UpdateTime:   now,
	}
	if _, err := coll.InsertOne(ctx, u); err != nil {
		return nil, errs.WrapMsg(err, "insert user", "username", in.Username)
	}
	return u, nil
}

// LoginResult is what the login handler returns to the client.
type LoginResult struct {
	Token    string          `json:"token"`
	ExpireAt time.Time       `json:"expire_at"`
	User     *usermodel.User `json:"user"`
}

// Login checks the password, issues a JWT and records the session in redis so
// it can be revoked before the token expires.
func Login(ctx context.Context, db *mongo.Database, opts jwtlib.Options, username, password, userAgent, ip string) (*LoginResult, error) {
	coll := db.Collection((&usermodel.User{}).GetTableName())

	var u usermodel.User
	err := coll.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, errs.WrapMsg(err, "find user", "username", username)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, errs.ErrPassword
	}

	token, hash, exp, err := jwtlib.Generate(opts, u.UserID, nil)
	if err != nil {
		return nil, errs.WrapMsg(err, "generate token", "user_id", u.UserID)
	}

	sess := storage.Session{
		SessionID: ids.GenerateString(),
		UserID:    u.UserID,
		LoginTime: time.Now(),
		UserAgent: userAgent,
		IP:        ip,
	}
	if err := storage.SaveSession(ctx, hash, sess, time.Until(exp)); err != nil {
		return nil, errs.WrapMsg(err, "save session", "user_id", u.UserID)
	}

	return &LoginResult{Token: token, ExpireAt: exp, User: &u}, nil
}

// Logout revokes the session record behind the token hash.
func Logout(ctx context.Context, tokenHash string) error {
	return storage.RevokeSession(ctx, tokenHash)
}

// GetByID loads a user profile.
func GetByID(ctx context.Context, db *mongo.Database, userID string) (*usermodel.User, error) {
	coll := db.Collection((&usermodel.User{}).GetTableName())
	var u usermodel.User
	err := coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, errs.WrapMsg(err, "find user", "user_id", userID)
	}
	return &u, nil
}

// SendFriendRequest records a pending request on the target user. Requests to
// existing friends or duplicates are no-ops ($addToSet).
func SendFriendRequest(ctx context.Context, db *mongo.Database, fromID, toID string) error {
	if fromID == toID {
		return errs.ErrArgs.WithDetail("cannot friend yourself")
	}
	coll := db.Collection((&usermodel.User{}).GetTableName())
	res, err := coll.UpdateOne(ctx,
		bson.M{"user_id": toID, "friends": bson.M{"$ne": fromID}},
		bson.M{
			"$addToSet": bson.M{"friend_requests": fromID},
			"$set":      bson.M{"update_time": time.Now()},
		})
	if err != nil {
		return errs.WrapMsg(err, "send friend request", "from", fromID, "to", toID)
	}
	if res.MatchedCount == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

// AcceptFriendRequest moves a pending request into both friend lists.
func AcceptFriendRequest(ctx context.Context, db *mongo.Database, userID, requesterID string) error {
	coll := db.Collection((&usermodel.User{}).GetTableName())
	now := time.Now()

	res, err := coll.UpdateOne(ctx,
		bson.M{"user_id": userID, "friend_requests": requesterID},
		bson.M{
			"$pull":     bson.M{"friend_requests": requesterID},
			"$addToSet": bson.M{"friends": requesterID},
			"$set":      bson.M{"update_time": now},
		})
	if err != nil {
		return errs.WrapMsg(err, "accept friend request", "user", userID, "requester", requesterID)
	}
	if res.MatchedCount == 0 {
		return errs.ErrRecordNotFound.WithDetail("no pending request from " + requesterID)
	}

	_, err = coll.UpdateOne(ctx,
		bson.M{"user_id": requesterID},
		bson.M{
			"$addToSet": bson.M{"friends": userID},
			"$set":      bson.M{"update_time": now},
		},
		options.Update())
	if err != nil {
		return errs.WrapMsg(err, "mirror friendship", "user", userID, "requester", requesterID)
	}
	return nil
}
