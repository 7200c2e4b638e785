package model

import "go.mongodb.org/mongo-driver/v2/bson"

// Course is the persisted course document. Courses are created by any
// authenticated user, readable by anyone, and never updated or deleted.
type Course struct {
	ID          bson.ObjectID `bson:"_id,omitempty"         json:"id"`
	CourseName  string        `bson:"coursename"            json:"coursename"`
	Description string        `bson:"description"           json:"description"`
	Brief       string        `bson:"brief"                 json:"brief"`
	Amount      float64       `bson:"amount"                json:"amount"`
	CourseImage string        `bson:"courseImage,omitempty" json:"courseImage,omitempty"`
}
