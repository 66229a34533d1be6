/*
Package models defines request, response, and domain types for the API.

# Domain Types

One struct per persisted entity: Product, Order, Testimonial,
ProductReview, BlogPost, Project, Category, Subscriber, plus the
SocialLinks settings blob. JSON field names match the database column
names, which is also the wire format the frontend consumes.

# Request and Response Types

Each endpoint that reads a body has a matching *Request struct. Create
endpoints respond with CreateResponse{id, message}; order creation adds
total_amount. Other mutations respond with MessageResponse.

# Status Constants

Order status values are the set offered by the admin dashboard
(pending, confirmed, processing, shipped, delivered, cancelled); the
server stores any string and does not enforce a transition graph.
Testimonials and product reviews use pending/approved. Blog posts use
published/draft.
*/
package models
