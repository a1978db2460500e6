package tiktok

// StatusMessages maps upstream application status codes to messages.
var StatusMessages = map[int64]string{
	0:     "OK",
	10000: "Captcha required",
	10101: "Server error",
	10102: "User not login",
	10111: "Net error",
	10113: "Shark slide",
	10114: "Shark block",
	10119: "Live need login",
	10202: "User not exist",
	10203: "Music not exist",
	10204: "Video not exist",
	10205: "Hashtag not exist",
	10208: "Effect not exist",
	10209: "Hashtag black list",
	10210: "Live not exist",
	10211: "Hashtag sensitivity",
	10212: "Hashtag unshelve",
	10213: "Video low age m",
	10214: "Video low age m",
	10215: "Video under review",
	10216: "Video private by user",
	10217: "Video forbidden",
	10218: "Music unshelve",
	10219: "Music sensitivity",
	10220: "Video private",
	10221: "Video music copyright",
	10222: "User private",
	10223: "User cannot get id",
	10224: "User temporary banned",
	10225: "User hide",
	10227: "Video sensitive",
}
