package domain

import "github.com/google/uuid"

// Identifiers are rendered as canonical uuid strings in JSON and job args.

func (id UserID) MarshalText() ([]byte, error)     { return uuid.UUID(id).MarshalText() }
func (id *UserID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id ListingID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *ListingID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id ReviewID) MarshalText() ([]byte, error)   { return uuid.UUID(id).MarshalText() }
func (id *ReviewID) UnmarshalText(b []byte) error  { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id FavoriteID) String() string                { return uuid.UUID(id).String() }
func (id FavoriteID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *FavoriteID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }

func (id SubscriptionID) String() string                { return uuid.UUID(id).String() }
func (id SubscriptionID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id *SubscriptionID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
