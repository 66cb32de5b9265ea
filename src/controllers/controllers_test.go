package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"hbs/src/db"
	"hbs/src/db/dbtest"
	"hbs/src/models"
	"hbs/src/types"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ControllersSuite struct {
	suite.Suite
	db    *gorm.DB
	owner *models.User
	guest *models.User
}

func (s *ControllersSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.db = dbtest.New(s.T())
	db.NewDB(s.db)
	s.owner = &models.User{ID: "owner_1", Username: "Olive", Email: "olive@example.com", Role: types.ROLE_ADMIN}
	s.guest = &models.User{ID: "guest_1", Username: "Gus", Email: "gus@example.com", Role: types.ROLE_USER}
	s.Require().NoError(s.db.Create(s.owner).Error)
	s.Require().NoError(s.db.Create(s.guest).Error)
}

func (s *ControllersSuite) newContext(user *models.User, method, target string, body io.Reader, contentType string) *gin.Context {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	ctx.Request = req
	if user != nil {
		ctx.Set("user", user)
		ctx.Set("id", user.ID)
		ctx.Set("role", string(user.Role))
	}
	return ctx
}

func (s *ControllersSuite) jsonContext(user *models.User, method, target string, body any) *gin.Context {
	b, _ := json.Marshal(body)
	return s.newContext(user, method, target, bytes.NewReader(b), "application/json")
}

func (s *ControllersSuite) createHotel(owner *models.User, name string, createdAt time.Time) *models.Hotel {
	h := &models.Hotel{Name: name, Address: "Addr", Contact: "123", City: "Pune", OwnerID: owner.ID}
	h.CreatedAt = createdAt
	s.Require().NoError(s.db.Create(h).Error)
	return h
}

func (s *ControllersSuite) TestUserRecentSearchKeepsThree() {
	for _, city := range []string{"Goa", "Pune", "Delhi", "Agra"} {
		status, err := UserStoreRecentSearch(s.jsonContext(s.guest, http.MethodPost, "/", gin.H{"recentSearchedCity": city}))
		s.Require().NoError(err)
		s.Equal(http.StatusOK, status)
	}
	var stored models.User
	s.Require().NoError(s.db.First(&stored, "id = ?", s.guest.ID).Error)
	s.Equal([]string{"Pune", "Delhi", "Agra"}, stored.RecentSearchedCities)

	status, err := UserStoreRecentSearch(s.jsonContext(s.guest, http.MethodPost, "/", gin.H{}))
	s.Error(err)
	s.Equal(http.StatusBadRequest, status)
}

func (s *ControllersSuite) TestUserGetAndRegisterAsAdmin() {
	user, status, err := UserGet(s.newContext(s.guest, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, status)
	s.Equal([]string{}, user.RecentSearchedCities)

	status, err = UserRegisterAsAdmin(s.newContext(s.guest, http.MethodPost, "/", nil, ""))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, status)
	var stored models.User
	s.Require().NoError(s.db.First(&stored, "id = ?", s.guest.ID).Error)
	s.Equal(types.ROLE_ADMIN, stored.Role)
}

func (s *ControllersSuite) TestHotelRegisterGrantsOwnerRole() {
	hotel, status, err := HotelRegister(s.jsonContext(s.guest, http.MethodPost, "/", gin.H{
		"name": "Hill View", "address": "2 Ridge Rd", "contact": "555", "city": "Shimla",
	}))
	s.Require().NoError(err)
	s.Equal(http.StatusCreated, status)
	s.Equal(s.guest.ID, hotel.OwnerID)
	s.Equal("hill-view-shimla", hotel.Slug)

	var stored models.User
	s.Require().NoError(s.db.First(&stored, "id = ?", s.guest.ID).Error)
	s.True(stored.IsOwner())

	_, status, err = HotelRegister(s.jsonContext(s.guest, http.MethodPost, "/", gin.H{"name": "x"}))
	s.Error(err)
	s.Equal(http.StatusBadRequest, status)
}

func (s *ControllersSuite) TestHotelsMineNewestFirst() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.createHotel(s.owner, "First", base)
	s.createHotel(s.owner, "Second", base.Add(time.Hour))
	s.createHotel(s.guest, "Elsewhere", base)

	hotels, status, err := HotelsMine(s.newContext(s.owner, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, status)
	s.Require().Len(hotels, 2)
	s.Equal("Second", hotels[0].Name)
}

func (s *ControllersSuite) roomForm(fields map[string]string, images int) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		mw.WriteField(k, v)
	}
	for i := 0; i < images; i++ {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="images"; filename="room.JPG"`)
		h.Set("Content-Type", "image/jpeg")
		part, _ := mw.CreatePart(h)
		part.Write([]byte("jpeg-bytes"))
	}
	mw.Close()
	return body, mw.FormDataContentType()
}

func (s *ControllersSuite) TestRoomCreate() {
	var keys []string
	upload := UploadImage
	defer func() { UploadImage = upload }()
	UploadImage = func(_ context.Context, key, contentType string, r io.Reader) (*string, error) {
		keys = append(keys, key)
		url := "https://cdn.example.com/" + key
		return &url, nil
	}
	hotel := s.createHotel(s.owner, "Seaside", time.Now().UTC())

	body, ct := s.roomForm(map[string]string{
		"roomType": "Suite", "pricePerNight": "250", "amenities": `["Free WiFi","Pool Access"]`,
	}, 2)
	room, status, err := RoomCreate(s.newContext(s.owner, http.MethodPost, "/", body, ct))
	s.Require().NoError(err)
	s.Equal(http.StatusCreated, status)
	s.Equal(hotel.ID, room.HotelID)
	s.Equal(250.0, room.PricePerNight)
	s.True(room.IsAvailable)
	s.Equal([]string{"Free WiFi", "Pool Access"}, room.Amenities)
	s.Len(room.Images, 2)
	s.Require().Len(keys, 2)
	s.Contains(keys[0], "rooms/"+hotel.ID+"/")
	s.Contains(keys[0], ".jpg")

	body, ct = s.roomForm(map[string]string{"roomType": "Suite", "pricePerNight": "250"}, 6)
	_, status, err = RoomCreate(s.newContext(s.owner, http.MethodPost, "/", body, ct))
	s.ErrorIs(err, errTooManyImages)
	s.Equal(http.StatusBadRequest, status)

	body, ct = s.roomForm(map[string]string{"roomType": "Suite", "pricePerNight": "250", "hotelId": "someone-elses"}, 0)
	_, status, err = RoomCreate(s.newContext(s.owner, http.MethodPost, "/", body, ct))
	s.ErrorIs(err, types.ErrHotelNotFound)
	s.Equal(http.StatusNotFound, status)

	body, ct = s.roomForm(map[string]string{"roomType": "Suite", "pricePerNight": "250"}, 0)
	_, _, err = RoomCreate(s.newContext(s.guest, http.MethodPost, "/", body, ct))
	s.ErrorIs(err, types.ErrNoHotel)
}

func (s *ControllersSuite) TestRoomsListingAndToggle() {
	hotel := s.createHotel(s.owner, "Seaside", time.Now().UTC())
	room := &models.Room{HotelID: hotel.ID, RoomType: "Single", PricePerNight: 80, IsAvailable: true}
	s.Require().NoError(s.db.Create(room).Error)

	rooms, _, err := RoomsList(s.newContext(nil, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Require().Len(rooms, 1)
	s.Equal("Seaside", rooms[0].Hotel.Name)
	s.Require().NotNil(rooms[0].Hotel.Owner)
	s.Equal(s.owner.ID, rooms[0].Hotel.Owner.ID)
	s.Empty(rooms[0].Hotel.Owner.Email)
	s.Empty(rooms[0].Hotel.Owner.Username)

	_, status, err := RoomToggleAvailability(s.jsonContext(s.guest, http.MethodPost, "/", gin.H{"roomId": room.ID}))
	s.ErrorIs(err, types.ErrRoomNotFound)
	s.Equal(http.StatusNotFound, status)

	toggled, status, err := RoomToggleAvailability(s.jsonContext(s.owner, http.MethodPost, "/", gin.H{"roomId": room.ID}))
	s.Require().NoError(err)
	s.Equal(http.StatusOK, status)
	s.False(toggled.IsAvailable)

	rooms, _, err = RoomsList(s.newContext(nil, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Empty(rooms)

	owned, _, err := RoomsOwner(s.newContext(s.owner, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Len(owned, 1)

	_, _, err = RoomsOwner(s.newContext(s.guest, http.MethodGet, "/", nil, ""))
	s.ErrorIs(err, types.ErrNoHotel)
}

func (s *ControllersSuite) TestFeedbackLifecycle() {
	fb, status, err := FeedbackSubmit(s.jsonContext(s.guest, http.MethodPost, "/", gin.H{"rating": 5, "review": "Lovely stay"}))
	s.Require().NoError(err)
	s.Equal(http.StatusCreated, status)
	s.Equal("Unknown", fb.Location)
	s.Equal("Gus", fb.UserName)
	s.False(fb.IsApproved)

	_, status, err = FeedbackSubmit(s.jsonContext(s.guest, http.MethodPost, "/", gin.H{"rating": 6, "review": "too good"}))
	s.Error(err)
	s.Equal(http.StatusBadRequest, status)

	approved, _, err := FeedbackApproved(s.newContext(nil, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Empty(approved)

	ctx := s.newContext(s.owner, http.MethodPut, "/", nil, "")
	ctx.Params = gin.Params{{Key: "feedbackId", Value: fb.ID}}
	updated, _, err := FeedbackApprove(ctx)
	s.Require().NoError(err)
	s.True(updated.IsApproved)

	approved, _, err = FeedbackApproved(s.newContext(nil, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Len(approved, 1)

	all, _, err := FeedbackAll(s.newContext(s.owner, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Len(all, 1)

	ctx = s.newContext(s.owner, http.MethodDelete, "/", nil, "")
	ctx.Params = gin.Params{{Key: "feedbackId", Value: fb.ID}}
	status, err = FeedbackDelete(ctx)
	s.Require().NoError(err)
	s.Equal(http.StatusOK, status)

	ctx = s.newContext(s.owner, http.MethodDelete, "/", nil, "")
	ctx.Params = gin.Params{{Key: "feedbackId", Value: fb.ID}}
	status, err = FeedbackDelete(ctx)
	s.ErrorIs(err, types.ErrFeedbackNotFound)
	s.Equal(http.StatusNotFound, status)
}

func (s *ControllersSuite) TestFeedbackApprovedLimit() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		f := &models.Feedback{UserID: s.guest.ID, Rating: 4, Review: "ok", Location: "Goa", IsApproved: true}
		f.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		s.Require().NoError(s.db.Create(f).Error)
	}
	approved, _, err := FeedbackApproved(s.newContext(nil, http.MethodGet, "/", nil, ""))
	s.Require().NoError(err)
	s.Len(approved, 20)
	s.True(approved[0].CreatedAt.After(approved[19].CreatedAt))
}

func TestControllersSuite(t *testing.T) {
	suite.Run(t, new(ControllersSuite))
}
