package model

import (
	"time"

	"SocialChat/data/database"
	mgo "SocialChat/service/mgo"

	"go.mongodb.org/mongo-driver/mongo"
)

var _ database.Table = (*Post)(nil)

type Comment struct {
	CommentID string    `bson:"comment_id" json:"CommentID"`
	UserID    string    `bson:"user_id" json:"UserID"`
	Username  string    `bson:"username" json:"Username"`
	Text      string    `bson:"text" json:"Text"`
	CreatedAt time.Time `bson:"created_at" json:"CreatedAt"`
}

// Post is a feed entry. Likes is a set of user ids; comments are embedded,
// which is fine at wall-post scale.
type Post struct {
	PostID         string    `bson:"post_id" json:"PostID"`
	CreatorID      string    `bson:"creator_id" json:"CreatorID"`
	CreatorName    string    `bson:"creator_name" json:"CreatorName"`
	CreatorFaceURL string    `bson:"creator_face_url,omitempty" json:"CreatorFaceURL"`
	Content        string    `bson:"content" json:"Content"`
	ImageURL       string    `bson:"image_url,omitempty" json:"ImageURL"`
	Likes          []string  `bson:"likes,omitempty" json:"Likes"`
	Comments       []Comment `bson:"comments,omitempty" json:"Comments"`
	CreateTime     time.Time `bson:"create_time" json:"CreateTime"`
	UpdateTime     time.Time `bson:"update_time" json:"UpdateTime"`
}

func (p *Post) GetTableName() string {
	return "post"
}

func (p *Post) Collection() *mongo.Collection {
	return mgo.GetDB().Collection(p.GetTableName())
}
