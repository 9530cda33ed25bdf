package catalog

import (
	"strings"

	"github.com/shivam-mishra-20/wheelboard-fe-sub002/internal/query"
)

// Searchable text fields per entity, addressable by name from the `fields` query parameter.

var JobFields = []query.Field[Job]{
	{Name: "title", Get: func(j Job) string { return j.Title }},
	{Name: "department", Get: func(j Job) string { return j.Department }},
	{Name: "location", Get: func(j Job) string { return j.Location }},
	{Name: "description", Get: func(j Job) string { return j.Description }},
}

var TripFields = []query.Field[Trip]{
	{Name: "title", Get: func(t Trip) string { return t.Title }},
	{Name: "from", Get: func(t Trip) string { return t.Route.From }},
	{Name: "to", Get: func(t Trip) string { return t.Route.To }},
	{Name: "deliveryType", Get: func(t Trip) string { return t.DeliveryType }},
	{Name: "vehicle", Get: func(t Trip) string { return t.Vehicle.Name + " " + t.Vehicle.Registration }},
}

var BookingFields = []query.Field[Booking]{
	{Name: "companyName", Get: func(b Booking) string { return b.CompanyName }},
	{Name: "serviceName", Get: func(b Booking) string { return b.ServiceName }},
	{Name: "location", Get: func(b Booking) string { return b.Location }},
	{Name: "category", Get: func(b Booking) string { return b.Category }},
}

var VehicleFields = []query.Field[Vehicle]{
	{Name: "name", Get: func(v Vehicle) string { return v.Name }},
	{Name: "model", Get: func(v Vehicle) string { return v.Model }},
	{Name: "registration", Get: func(v Vehicle) string { return v.Registration }},
	{Name: "location", Get: func(v Vehicle) string { return v.Location }},
}

var DriverFields = []query.Field[Driver]{
	{Name: "name", Get: func(d Driver) string { return d.Name }},
	{Name: "phone", Get: func(d Driver) string { return d.Phone }},
}

var ModuleFields = []query.Field[LearningModule]{
	{Name: "title", Get: func(m LearningModule) string { return m.Title }},
	{Name: "category", Get: func(m LearningModule) string { return m.Category }},
	{Name: "instructor", Get: func(m LearningModule) string { return m.Instructor }},
	{Name: "tags", Get: func(m LearningModule) string { return strings.Join(m.Tags, " ") }},
}

var PostFields = []query.Field[FeedPost]{
	{Name: "content", Get: func(p FeedPost) string { return p.Content }},
	{Name: "author", Get: func(p FeedPost) string { return p.Author.Name }},
	{Name: "category", Get: func(p FeedPost) string { return p.Category }},
}
