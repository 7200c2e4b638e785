package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Education is one entry in a user's education history.
type Education struct {
	Degree      string `bson:"degree"         json:"degree"      validate:"required"`
	Institution string `bson:"institution"    json:"institution" validate:"required"`
	Year        int    `bson:"year,omitempty" json:"year,omitempty"`
}

// User is the persisted account document. Email is unique (index enforced)
// and immutable after registration. Password holds the bcrypt hash only and
// is never serialized to JSON. AppliedCourses keeps insertion order and holds
// each course at most once.
type User struct {
	ID             bson.ObjectID   `bson:"_id,omitempty"            json:"id"`
	Name           string          `bson:"name"                     json:"name"`
	Email          string          `bson:"email"                    json:"email"`
	Password       string          `bson:"password"                 json:"-"`
	Phone          string          `bson:"phone,omitempty"          json:"phone,omitempty"`
	Address        string          `bson:"address,omitempty"        json:"address,omitempty"`
	Skills         string          `bson:"skills,omitempty"         json:"skills,omitempty"`
	Image          string          `bson:"image,omitempty"          json:"image,omitempty"`
	Dob            string          `bson:"dob,omitempty"            json:"dob,omitempty"` // opaque date string, stored as received
	Education      []Education     `bson:"education,omitempty"      json:"education,omitempty"`
	AppliedCourses []bson.ObjectID `bson:"appliedCourses,omitempty" json:"appliedCourses,omitempty"`
}
