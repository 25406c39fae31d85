package model

import (
	"time"

	"SocialChat/data/database"
	mgo "SocialChat/service/mgo"

	"go.mongodb.org/mongo-driver/mongo"
)

var _ database.Table = (*User)(nil)

// User is the account document. Friendship is symmetric: both sides carry the
// other's user id in Friends once a request is accepted.
type User struct {
	UserID       string `bson:"user_id" json:"UserID"` // immutable primary key
	Username     string `bson:"username" json:"Username"`
	PasswordHash string `bson:"password_hash" json:"-"`
	FirstName    string `bson:"first_name,omitempty" json:"FirstName"`
	LastName     string `bson:"last_name,omitempty" json:"LastName"`
	FaceURL      string `bson:"face_url,omitempty" json:"FaceURL"`
	Bio          string `bson:"bio,omitempty" json:"Bio"`

	Friends        []string `bson:"friends,omitempty" json:"Friends"`                // accepted friend user ids
	FriendRequests []string `bson:"friend_requests,omitempty" json:"FriendRequests"` // pending inbound request user ids

	CreateTime time.Time `bson:"create_time" json:"CreateTime"`
	UpdateTime time.Time `bson:"update_time" json:"UpdateTime"`
}

func (u *User) GetUserID() string {
	return u.UserID
}

func (u *User) GetTableName() string {
	return "user"
}

func (u *User) Collection() *mongo.Collection {
	return mgo.GetDB().Collection(u.GetTableName())
}
