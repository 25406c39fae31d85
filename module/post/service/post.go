package service

import (
	"context"
	"time"

	postmodel "SocialChat/module/post/model"
	usermodel "SocialChat/module/user/model"
	"SocialChat/tools/errs"
	"SocialChat/tools/ids"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new wall post. Creator display fields are denormalized
// onto the post so the feed renders without a join.
func Create(ctx context.Context, db *mongo.Database, creatorID, content, imageURL string) (*postmodel.Post, error) {
	if content == "" && imageURL == "" {
		return nil, errs.ErrArgs.WithDetail("empty post")
	}

	var creator usermodel.User
	err := db.Collection((&usermodel.User{}).GetTableName()).
		FindOne(ctx, bson.M{"user_id": creatorID}).Decode(&creator)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.ErrUserNotFound
	}
	if err != nil {
		return nil, errs.WrapMsg(err, "load creator", "user_id", creatorID)
	}

	now := time.Now()
	p := &postmodel.Post{
		PostID:         ids.GenerateString(),
		CreatorID:      creator.UserID,
		CreatorName:    creator.Username,
		CreatorFaceURL: creator.FaceURL,
		Content:        content,
		ImageURL:       imageURL,
		CreateTime:     now,
		UpdateTime:     now,
	}
	if _, err := db.Collection(p.GetTableName()).InsertOne(ctx, p); err != nil {
		return nil, errs.WrapMsg(err, "insert post", "user_id", creatorID)
	}
	return p, nil
}

// Feed returns the newest posts first.
func Feed(ctx context.Context, db *mongo.Database, limit int64) ([]postmodel.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	coll := db.Collection((&postmodel.Post{}).GetTableName())
	cur, err := coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.M{"create_time": -1}).SetLimit(limit))
	if err != nil {
		return nil, errs.WrapMsg(err, "find posts")
	}
	defer cur.Close(ctx)

	var out []postmodel.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, errs.WrapMsg(err, "decode posts")
	}
	return out, nil
}

// Like adds the user to the like set; a second like is a no-op.
func Like(ctx context.Context, db *mongo.Database, postID, userID string) error {
	coll := db.Collection((&postmodel.Post{}).GetTableName())
	res, err := coll.UpdateOne(ctx,
		bson.M{"post_id": postID},
		bson.M{"$addToSet": bson.M{"likes": userID}, "$set": bson.M{"update_time": time.Now()}})
	if err != nil {
		return errs.WrapMsg(err, "like post", "post_id", postID)
	}
	if res.MatchedCount == 0 {
		return errs.ErrRecordNotFound
	}
	return nil
}

// Unlike removes the user from the like set.
func Unlike(ctx context.Context, db *mongo.Database, postID, userID string) error {
	coll := db.Collection((&postmodel.Post{}).GetTableName())
	res, err := coll.UpdateOne(ctx,
		bson.M{"post_id": postID},
		bson.M{"$pull": bson.M{"likes": userID}, "$set": bson.M{"update_time": time.Now()}})
	if err != nil {
		return errs.WrapMsg(err, "unlike post", "post_id", postID)
	}
	if res.MatchedCount == 0 {
		return errs.ErrRecordNotFound
	}
	return nil
}

// AddComment appends an embedded comment.
func AddComment(ctx context.Context, db *mongo.Database, postID, userID, username, text string) (*postmodel.Comment, error) {
	if text == "" {
		return nil, errs.ErrArgs.WithDetail("empty comment")
	}
	c := postmodel.Comment{
		CommentID: ids.GenerateString(),
		UserID:    userID,
		Username:  username,
		Text:      text,
		CreatedAt: time.Now(),
	}
	coll := db.Collection((&postmodel.Post{}).GetTableName())
	res, err := coll.UpdateOne(ctx,
		bson.M{"post_id": postID},
		bson.M{"$push": bson.M{"comments": c}, "$set": bson.M{"update_time": c.CreatedAt}})
	if err != nil {
		return nil, errs.WrapMsg(err, "add comment", "post_id", postID)
	}
	if res.MatchedCount == 0 {
		return nil, errs.ErrRecordNotFound
	}
	return &c, nil
}
