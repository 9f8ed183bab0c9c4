package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/d60-Lab/timeline-service/config"
	"github.com/d60-Lab/timeline-service/internal/model"
	"github.com/d60-Lab/timeline-service/internal/repository"
	"github.com/d60-Lab/timeline-service/internal/service"
	"github.com/d60-Lab/timeline-service/pkg/database"
	"github.com/d60-Lab/timeline-service/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func envInt(name string, def int) int {
	if s := os.Getenv(name); s != "" {
		if v, e := strconv.Atoi(s); e == nil && v > 0 {
			return v
		}
	}
	return def
}

// 本地联调数据：N 个用户互相随机关注，发 POSTS 条帖子，随机点赞
func main() {
	cfg := must(config.Load())
	_ = logger.Init(cfg.Log.Level, "")
	db := must(database.InitDB(cfg))

	N := envInt("USERS", 50)
	POSTS := envInt("POSTS", 500)
	GROUPS := envInt("GROUPS", 5)

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	postRepo := repository.NewPostRepository(db)
	followRepo := repository.NewFollowRepository(db)
	likeRepo := repository.NewLikeRepository(db)

	userSvc := service.NewUserService(userRepo)
	groupSvc := service.NewGroupService(groupRepo)

	users := make([]*model.User, 0, N)
	for i := 0; i < N; i++ {
		u, err := userSvc.Register(ctx, fmt.Sprintf("user%03d", i), fmt.Sprintf("user%03d@example.com", i), "secret123")
		if err != nil {
			panic(err)
		}
		users = append(users, u)
	}

	groups := make([]*model.Group, 0, GROUPS)
	for i := 0; i < GROUPS; i++ {
		g, err := groupSvc.Create(ctx, fmt.Sprintf("Group %d", i), fmt.Sprintf("group-%d", i), "seeded group")
		if err != nil {
			panic(err)
		}
		groups = append(groups, g)
	}

	for i := 0; i < POSTS; i++ {
		author := users[rand.Intn(len(users))]
		post := &model.Post{AuthorID: author.ID, Text: fmt.Sprintf("post %d from %s", i, author.Username), IsValid: true}
		if rand.Intn(2) == 0 {
			post.GroupID = &groups[rand.Intn(len(groups))].ID
		}
		if err := postRepo.Create(ctx, post); err != nil {
			panic(err)
		}
		// 随机点赞
		for j := 0; j < rand.Intn(5); j++ {
			_ = likeRepo.Create(ctx, users[rand.Intn(len(users))].ID, post.ID)
		}
	}

	// 随机关注网
	for _, u := range users {
		for j := 0; j < rand.Intn(8); j++ {
			other := users[rand.Intn(len(users))]
			if other.ID == u.ID {
				continue
			}
			_ = followRepo.Create(ctx, u.ID, other.ID)
		}
	}

	fmt.Printf("seeded: %d users, %d groups, %d posts\n", N, GROUPS, POSTS)
}
